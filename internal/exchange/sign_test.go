package exchange

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Signatures must be byte-exact for the exchange to accept them, so
// these vectors pin the scheme against regressions.
func TestSignFixedVectors(t *testing.T) {
	cases := []struct {
		name      string
		secret    string
		timestamp string
		method    string
		path      string
		body      map[string]string
		want      string
	}{
		{
			name:      "signed order body",
			secret:    "test-secret",
			timestamp: "1700000000",
			method:    "POST",
			path:      "/orders",
			body: map[string]string{
				"symbol": "BTCBRL",
				"side":   "buy",
				"type":   "limit",
				"amount": "0.01",
				"price":  "301000",
			},
			want: "4dc904de763bd243d1af972d2dbd99af3245f3b5709b45e481b7dc370eba0052",
		},
		{
			name:      "empty body",
			secret:    "test-secret",
			timestamp: "1700000000",
			method:    "GET",
			path:      "/account",
			want:      "d9724d981ab439f9a3cfbef1630ebb23c2a5f2401648eb8625e611acb127e940",
		},
		{
			name:      "market order without price",
			secret:    "another-secret",
			timestamp: "1693526400",
			method:    "POST",
			path:      "/orders",
			body: map[string]string{
				"symbol": "ETHBRL",
				"side":   "sell",
				"type":   "market",
				"amount": "1.5",
			},
			want: "a72bc9c5a066763e00ceb6fba9d9739dee2e150d5debbb19592cc48a9f519ab0",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			payload, err := canonicalBody(tc.body)
			require.NoError(t, err)

			got := sign(tc.secret, tc.timestamp, tc.method, tc.path, payload)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, got, sign(tc.secret, tc.timestamp, tc.method, tc.path, payload), "signature is deterministic")
		})
	}
}

func TestSignUppercasesMethod(t *testing.T) {
	lower := sign("s", "1700000000", "post", "/orders", nil)
	upper := sign("s", "1700000000", "POST", "/orders", nil)
	assert.Equal(t, upper, lower)
}

func TestCanonicalBodySortedCompact(t *testing.T) {
	payload, err := canonicalBody(map[string]string{
		"symbol": "BTCBRL",
		"amount": "0.01",
		"side":   "buy",
	})
	require.NoError(t, err)
	assert.Equal(t, `{"amount":"0.01","side":"buy","symbol":"BTCBRL"}`, string(payload))
}

func TestCanonicalBodyEmpty(t *testing.T) {
	payload, err := canonicalBody(nil)
	require.NoError(t, err)
	assert.Nil(t, payload)
}
