package archive

import (
	"testing"
	"time"

	"github.com/certhub/certhub/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeObjectStore struct {
	bucket      string
	objectName  string
	data        []byte
	contentType string
	err         error
}

func (f *fakeObjectStore) SaveObjectToBucket(bucket string, objectName string, data []byte, contentType string) error {
	f.bucket = bucket
	f.objectName = objectName
	f.data = data
	f.contentType = contentType
	return f.err
}

func (f *fakeObjectStore) GetObjectFromBucket(bucket string, objectName string) ([]byte, error) {
	return f.data, f.err
}

func TestArchiveStoresRenderedDocument(t *testing.T) {
	objects := &fakeObjectStore{}
	a := NewArchive(objects, "certificates")

	certificate := models.Certificate{
		CertificateNumber: "CERT-1735689600000-ABCDEF123",
		EventTitle:        "Workshop",
		IssuedAt:          time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
	}
	recipient := models.Account{FullName: "Bea", Email: "b@x.com"}

	require.NoError(t, a.Archive(certificate, recipient))

	assert.Equal(t, "certificates", objects.bucket)
	assert.Equal(t, "CERT-1735689600000-ABCDEF123.txt", objects.objectName)
	assert.Equal(t, "text/plain", objects.contentType)

	document := string(objects.data)
	assert.Contains(t, document, "CERT-1735689600000-ABCDEF123")
	assert.Contains(t, document, "Workshop")
	assert.Contains(t, document, "Bea <b@x.com>")
}
