package registry

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

const base36Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
const suffixLength = 9

var numberRandMu sync.Mutex
var numberRand = rand.New(rand.NewSource(time.Now().UnixNano()))

// NewCertificateNumber builds a display-facing certificate number:
// CERT-<millisecond timestamp>-<9 uppercase base36 characters>. It is not a
// security token; uniqueness is enforced by the registry re-rolling on
// collision.
func NewCertificateNumber() string {
	numberRandMu.Lock()
	defer numberRandMu.Unlock()

	suffix := make([]byte, suffixLength)
	for i := range suffix {
		suffix[i] = base36Alphabet[numberRand.Intn(len(base36Alphabet))]
	}

	millis := time.Now().UnixNano() / int64(time.Millisecond)
	return fmt.Sprintf("CERT-%d-%s", millis, string(suffix))
}
