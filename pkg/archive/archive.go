// Package archive keeps a rendered copy of every issued certificate in
// object storage, keyed by certificate number. It is optional; the registry
// works without it.
package archive

import (
	"fmt"

	"github.com/certhub/certhub/pkg/models"
	"github.com/certhub/certhub/pkg/objectstore"
)

type Archive struct {
	objects objectstore.ObjectStore
	bucket  string
}

func NewArchive(objects objectstore.ObjectStore, bucket string) *Archive {
	return &Archive{objects: objects, bucket: bucket}
}

func (a *Archive) Archive(certificate models.Certificate, recipient models.Account) error {
	document := RenderDocument(certificate, recipient)
	objectName := certificate.CertificateNumber + ".txt"
	return a.objects.SaveObjectToBucket(a.bucket, objectName, []byte(document), "text/plain")
}

// RenderDocument produces the plain-text certificate document stored in the
// archive bucket.
func RenderDocument(certificate models.Certificate, recipient models.Account) string {
	return fmt.Sprintf(
		"CERTIFICATE OF ATTENDANCE\n\n"+
			"Number:    %s\n"+
			"Event:     %s\n"+
			"Issued to: %s <%s>\n"+
			"Issued at: %s\n",
		certificate.CertificateNumber,
		certificate.EventTitle,
		recipient.FullName,
		recipient.Email,
		certificate.IssuedAt.Format("2006-01-02 15:04:05 MST"),
	)
}
