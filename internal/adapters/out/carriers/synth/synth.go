// Package synth generates the synthetic identifiers issued by carrier
// adapters in simulate mode, and maps transport outcomes onto the gateway's
// carrier error kinds for live mode.
package synth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	"freightgate/internal/adapters/out/httpx"
	"freightgate/internal/pkg/errs"
)

// ID produces a unique identifier with a carrier prefix, e.g. "np_res_9f2...".
func ID(prefix string) string {
	return prefix + randomHex(7)
}

// Number produces a human-readable consignment number: an uppercase hex tail
// behind the carrier's letter prefix, e.g. "NZX4A1B2C3D4".
func Number(prefix string, byteLen int) string {
	return prefix + strings.ToUpper(randomHex(byteLen))
}

func randomHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// CheckLive converts a transport result into the carrier error taxonomy:
// network failures and exhausted 5xx budgets are carrier_unreachable, any
// remaining non-2xx status is carrier_rejected.
func CheckLive(resp *httpx.Response, err error) (*httpx.Response, error) {
	if err != nil {
		return nil, errs.NewCarrierUnreachableError(err)
	}
	if resp.Status < 200 || resp.Status >= 300 {
		return nil, errs.NewCarrierRejectedError(fmt.Errorf("carrier returned status %d", resp.Status))
	}
	return resp, nil
}
