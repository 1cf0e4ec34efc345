package exchange

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
)

// canonicalBody serializes a request body with sorted keys and no
// extraneous whitespace. These exact bytes go both into the signature
// message and onto the wire; any divergence between the two makes the
// exchange reject the signature. encoding/json marshals map keys in
// sorted order and compact form, which is precisely the canonical
// encoding required.
func canonicalBody(body map[string]string) ([]byte, error) {
	if len(body) == 0 {
		return nil, nil
	}
	return json.Marshal(body)
}

// sign computes the authentication signature over
// timestamp + METHOD + path + body (plain concatenation, no
// separators) as lowercase hex HMAC-SHA256.
func sign(secret, timestamp, method, path string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(timestamp))
	mac.Write([]byte(strings.ToUpper(method)))
	mac.Write([]byte(path))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}
