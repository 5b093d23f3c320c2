package api

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zoobzio/walletwire"
	wwjson "github.com/zoobzio/walletwire/json"
	"github.com/zoobzio/walletwire/mnemonic"
	"github.com/zoobzio/walletwire/primitive"
	wwyaml "github.com/zoobzio/walletwire/yaml"
)

const testPoolID = "27522fe5-262e-42a5-8ccb-cef884ea2ba0"

var (
	seed24 = strings.Fields(strings.Repeat("abandon ", 23) + "art")
	sf12   = strings.Fields(strings.Repeat("abandon ", 11) + "about")
)

func encodeValue[T any](t *testing.T, vc walletwire.ValueCodec[T], v T) string {
	t.Helper()
	data, err := wwjson.New().Marshal(vc.Encode(v))
	require.NoError(t, err)
	return string(data)
}

func quoted(words []string) string {
	data, _ := json.Marshal(words)
	return string(data)
}

func TestWalletStateJSON(t *testing.T) {
	assert.Equal(t, `{"status":"ready"}`, encodeValue(t, WalletStateValue, primitive.Ready()))

	progress, err := primitive.NewPercentage(14)
	require.NoError(t, err)
	assert.Equal(t,
		`{"status":"restoring","progress":{"quantity":14,"unit":"percent"}}`,
		encodeValue(t, WalletStateValue, primitive.Restoring(progress)))
}

func TestWalletStateDecode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		err   string
	}{
		{"ready", `{"status":"ready"}`, ""},
		{"restoring", `{"status":"restoring","progress":{"quantity":14,"unit":"percent"}}`, ""},
		{"unknown tag", `{"status":"syncing"}`, `Error in $.status: unknown status "syncing", expected one of: ready, restoring`},
		{"missing tag", `{}`, `key "status" not found`},
		{"missing progress", `{"status":"restoring"}`, `key "progress" not found`},
		{"wrong unit", `{"status":"restoring","progress":{"quantity":14,"unit":"lovelace"}}`, `Error in $.progress.unit: expected unit "percent"`},
		{"over 100", `{"status":"restoring","progress":{"quantity":101,"unit":"percent"}}`, `Error in $.progress.quantity: percentage must be between 0 and 100`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var w any
			require.NoError(t, wwjson.New().Unmarshal([]byte(tt.input), &w))
			s, err := WalletStateValue.Decode(w)
			if tt.err != "" {
				require.Error(t, err)
				assert.Equal(t, tt.err, err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, encodeValue(t, WalletStateValue, s))
		})
	}
}

func TestWalletDelegationJSON(t *testing.T) {
	pool := primitive.NewPoolID(uuid.MustParse(testPoolID))
	assert.Equal(t,
		`{"status":"delegating","target":"27522fe5-262e-42a5-8ccb-cef884ea2ba0"}`,
		encodeValue(t, WalletDelegationValue, primitive.DelegatingTo(pool)))
	assert.Equal(t, `{"status":"not_delegating"}`, encodeValue(t, WalletDelegationValue, primitive.NotDelegating()))

	var w any
	require.NoError(t, wwjson.New().Unmarshal([]byte(`{"status":"delegating","target":"`+testPoolID+`"}`), &w))
	d, err := WalletDelegationValue.Decode(w)
	require.NoError(t, err)
	target, ok := d.Target()
	require.True(t, ok)
	assert.Equal(t, testPoolID, target.UUID().String())

	require.NoError(t, wwjson.New().Unmarshal([]byte(`{"status":"delegating","target":"nope"}`), &w))
	_, err = WalletDelegationValue.Decode(w)
	require.Error(t, err)
	assert.Equal(t, "Error in $.target: pool id must be a valid UUID", err.Error())
}

func testWallet(t *testing.T) Wallet {
	t.Helper()
	gap, err := primitive.NewAddressPoolGap(20)
	require.NoError(t, err)
	name, err := primitive.NewWalletName("Alan's Wallet")
	require.NoError(t, err)
	return Wallet{
		ID:             primitive.NewWalletID(uuid.MustParse("2512a00e-9653-4f30-9f5f-1d7b96f4f7e0")),
		AddressPoolGap: gap,
		Balance:        primitive.WalletBalance{Available: 42, Total: 43},
		Delegation:     primitive.NotDelegating(),
		Name:           name,
		State:          primitive.Ready(),
	}
}

const testWalletJSON = `{"id":"2512a00e-9653-4f30-9f5f-1d7b96f4f7e0","address_pool_gap":20,` +
	`"balance":{"available":{"quantity":42,"unit":"lovelace"},"total":{"quantity":43,"unit":"lovelace"}},` +
	`"delegation":{"status":"not_delegating"},"name":"Alan's Wallet","state":{"status":"ready"}}`

func TestWalletJSON(t *testing.T) {
	w := testWallet(t)

	data, err := json.Marshal(w)
	require.NoError(t, err)
	assert.Equal(t, testWalletJSON, string(data))

	var back Wallet
	require.NoError(t, json.Unmarshal(data, &back))
	again, err := json.Marshal(back)
	require.NoError(t, err)
	assert.Equal(t, testWalletJSON, string(again))
	assert.Nil(t, back.Passphrase)
}

func TestWalletPassphraseInfo(t *testing.T) {
	w := testWallet(t)
	w.Passphrase = &primitive.PassphraseInfo{LastUpdatedAt: time.Date(2019, 4, 12, 7, 47, 0, 0, time.UTC)}

	data, err := json.Marshal(w)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"passphrase":{"last_updated_at":"2019-04-12T07:47:00Z"}`)

	var back Wallet
	require.NoError(t, json.Unmarshal(data, &back))
	require.NotNil(t, back.Passphrase)
	assert.True(t, w.Passphrase.LastUpdatedAt.Equal(back.Passphrase.LastUpdatedAt))
}

func TestWalletJSONHTMLCharacters(t *testing.T) {
	ctx := context.Background()
	w := testWallet(t)
	name, err := primitive.NewWalletName("<Alan & Ada>")
	require.NoError(t, err)
	w.Name = name

	exact, err := WalletSchema.EncodeJSON(&w)
	require.NoError(t, err)
	assert.Contains(t, string(exact), `"name":"<Alan & Ada>"`)

	sent, err := walletwire.NewProcessor(wwjson.New(), WalletSchema).Send(ctx, &w)
	require.NoError(t, err)
	assert.Equal(t, string(exact), string(sent))

	// encoding/json escapes HTML in Marshaler output; the value is the same.
	escaped, err := json.Marshal(w)
	require.NoError(t, err)
	assert.Contains(t, string(escaped), `"name":"\u003cAlan \u0026 Ada\u003e"`)

	var back Wallet
	require.NoError(t, json.Unmarshal(escaped, &back))
	assert.Equal(t, "<Alan & Ada>", back.Name.String())
}

func TestWalletPostIntegralGap(t *testing.T) {
	payload := `{"address_pool_gap":20.0,"mnemonic_sentence":` + quoted(seed24) +
		`,"name":"w","passphrase":"Secure Passphrase"}`

	var d WalletPostData
	require.NoError(t, json.Unmarshal([]byte(payload), &d))
	require.NotNil(t, d.AddressPoolGap)
	assert.Equal(t, uint8(20), d.AddressPoolGap.Uint8())

	payload = strings.Replace(payload, "20.0", "20.5", 1)
	require.Error(t, json.Unmarshal([]byte(payload), &d))
}

func TestWalletPostDecode(t *testing.T) {
	payload := `{"mnemonic_sentence":` + quoted(seed24) + `,"name":"Alan's Wallet","passphrase":"Secure Passphrase"}`

	var d WalletPostData
	require.NoError(t, json.Unmarshal([]byte(payload), &d))

	assert.Nil(t, d.AddressPoolGap)
	assert.Equal(t, primitive.DefaultAddressPoolGap, d.Gap().Uint8())
	assert.Nil(t, d.MnemonicSecondFactor)
	assert.Equal(t, seed24, d.MnemonicSentence.Words())
	assert.Equal(t, "Alan's Wallet", d.Name.String())
	assert.Equal(t, "Secure Passphrase", string(d.Passphrase.Bytes()))

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, payload, string(out))
}

func TestWalletPostNullOptionals(t *testing.T) {
	payload := `{"address_pool_gap":null,"mnemonic_sentence":` + quoted(seed24) +
		`,"mnemonic_second_factor":null,"name":"w","passphrase":"Secure Passphrase"}`

	var d WalletPostData
	require.NoError(t, json.Unmarshal([]byte(payload), &d))
	assert.Nil(t, d.AddressPoolGap)
	assert.Nil(t, d.MnemonicSecondFactor)
}

func TestWalletPostFull(t *testing.T) {
	payload := `{"address_pool_gap":100,"mnemonic_sentence":` + quoted(seed24) +
		`,"mnemonic_second_factor":` + quoted(sf12) +
		`,"name":"w","passphrase":"Secure Passphrase"}`

	var d WalletPostData
	require.NoError(t, json.Unmarshal([]byte(payload), &d))
	require.NotNil(t, d.AddressPoolGap)
	assert.Equal(t, uint8(100), d.AddressPoolGap.Uint8())
	require.NotNil(t, d.MnemonicSecondFactor)
	assert.Equal(t, mnemonic.SecondFactor, d.MnemonicSecondFactor.Purpose())
	assert.Equal(t, sf12, d.MnemonicSecondFactor.Words())

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, payload, string(out))
}

func TestWalletPostErrors(t *testing.T) {
	seed := quoted(seed24)
	tests := []struct {
		name    string
		payload string
		err     string
	}{
		{
			name:    "missing name",
			payload: `{"mnemonic_sentence":` + seed + `,"passphrase":"Secure Passphrase"}`,
			err:     `key "name" not found`,
		},
		{
			name:    "gap too small",
			payload: `{"address_pool_gap":9,"mnemonic_sentence":` + seed + `,"name":"w","passphrase":"Secure Passphrase"}`,
			err:     "Error in $.address_pool_gap: An address pool gap must be a natural number between 10 and 100.",
		},
		{
			name:    "gap as string",
			payload: `{"address_pool_gap":"20","mnemonic_sentence":` + seed + `,"name":"w","passphrase":"Secure Passphrase"}`,
			err:     "Error in $.address_pool_gap: expected Number, but encountered String",
		},
		{
			name:    "second factor too long",
			payload: `{"mnemonic_sentence":` + seed + `,"mnemonic_second_factor":` + seed + `,"name":"w","passphrase":"Secure Passphrase"}`,
			err:     "Error in $.mnemonic_second_factor: Invalid number of words: 9 or 12 words are expected.",
		},
		{
			name:    "seed too short",
			payload: `{"mnemonic_sentence":` + quoted(sf12) + `,"name":"w","passphrase":"Secure Passphrase"}`,
			err:     "Error in $.mnemonic_sentence: Invalid number of words: 15, 18, 21 or 24 words are expected.",
		},
		{
			name:    "mnemonic word not a string",
			payload: `{"mnemonic_sentence":["abandon",1],"name":"w","passphrase":"Secure Passphrase"}`,
			err:     "Error in $.mnemonic_sentence[1]: expected String, but encountered Number",
		},
		{
			name:    "short passphrase",
			payload: `{"mnemonic_sentence":` + seed + `,"name":"w","passphrase":"short"}`,
			err:     "Error in $.passphrase: passphrase is too short: expected at least 10 characters",
		},
		{
			// Fields decode in declaration order, so the mnemonic is
			// reported before the name.
			name:    "first failure wins",
			payload: `{"mnemonic_sentence":["abandon"],"name":"","passphrase":"short"}`,
			err:     "Error in $.mnemonic_sentence: Invalid number of words: 15, 18, 21 or 24 words are expected.",
		},
		{
			name:    "not an object",
			payload: `[]`,
			err:     "parsing " + WalletPostSchema.TypeName() + " failed, expected Object, but encountered Array",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d WalletPostData
			err := json.Unmarshal([]byte(tt.payload), &d)
			require.Error(t, err)
			assert.True(t, errors.Is(err, walletwire.ErrDecode))
			assert.Equal(t, tt.err, err.Error())
		})
	}
}

func TestWalletPutOmitsAbsentName(t *testing.T) {
	data, err := json.Marshal(WalletPutData{})
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))

	var d WalletPutData
	require.NoError(t, json.Unmarshal([]byte(`{"name":"renamed"}`), &d))
	require.NotNil(t, d.Name)
	assert.Equal(t, "renamed", d.Name.String())

	err = json.Unmarshal([]byte(`{"name":""}`), &d)
	require.Error(t, err)
	assert.Equal(t, "Error in $.name: name is too short: expected at least 1 character", err.Error())
}

func TestWalletPutPassphrase(t *testing.T) {
	payload := `{"old_passphrase":"Old Passphrase","new_passphrase":"New Passphrase"}`

	var d WalletPutPassphraseData
	require.NoError(t, json.Unmarshal([]byte(payload), &d))
	assert.Equal(t, "Old Passphrase", string(d.OldPassphrase.Bytes()))
	assert.Equal(t, "New Passphrase", string(d.NewPassphrase.Bytes()))

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, payload, string(out))
}

func TestAddressInfo(t *testing.T) {
	addr, err := primitive.NewAddress([]byte("an address payload"))
	require.NoError(t, err)
	info := AddressInfo{ID: addr, State: primitive.AddressUnused}

	data, err := json.Marshal(info)
	require.NoError(t, err)
	assert.Equal(t, `{"id":"`+AddressText.Encode(addr)+`","state":"unused"}`, string(data))

	var back AddressInfo
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, addr.Bytes(), back.ID.Bytes())
	assert.Equal(t, primitive.AddressUnused, back.State)

	err = json.Unmarshal([]byte(`{"id":"`+AddressText.Encode(addr)+`","state":"spent"}`), &back)
	require.Error(t, err)
	assert.Equal(t, `Error in $.state: unknown value "spent", expected one of: used, unused`, err.Error())
}

func TestPostTransaction(t *testing.T) {
	a, err := primitive.NewAddress([]byte("first"))
	require.NoError(t, err)
	b, err := primitive.NewAddress([]byte("second"))
	require.NoError(t, err)
	addrA, addrB := AddressText.Encode(a), AddressText.Encode(b)

	payload := `{"targets":[{"address":"` + addrA + `","amount":{"quantity":1,"unit":"lovelace"}},` +
		`{"address":"` + addrB + `","amount":{"quantity":18446744073709551615,"unit":"lovelace"}}],` +
		`"passphrase":"Secure Passphrase"}`

	var d PostTransactionData
	require.NoError(t, json.Unmarshal([]byte(payload), &d))
	require.Len(t, d.Targets, 2)
	assert.Equal(t, primitive.Lovelace(18446744073709551615), d.Targets[1].Amount)

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, payload, string(out))
}

func TestPostTransactionErrors(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		err     string
	}{
		{
			name:    "no targets",
			payload: `{"targets":[],"passphrase":"Secure Passphrase"}`,
			err:     "Error in $.targets: parsing NonEmpty failed, unexpected empty list",
		},
		{
			name:    "bad address",
			payload: `{"targets":[{"address":"0OIl","amount":{"quantity":1,"unit":"lovelace"}}],"passphrase":"Secure Passphrase"}`,
			err:     "Error in $.targets[0].address: Unable to decode Address: expected Base58 encoding.",
		},
		{
			name:    "negative amount",
			payload: `{"targets":[{"address":"Cn8eVZg","amount":{"quantity":-1,"unit":"lovelace"}}],"passphrase":"Secure Passphrase"}`,
			err:     "Error in $.targets[0].amount.quantity: expected a natural number, got -1",
		},
		{
			name:    "missing amount",
			payload: `{"targets":[{"address":"Cn8eVZg"}],"passphrase":"Secure Passphrase"}`,
			err:     `Error in $.targets[0]: key "amount" not found`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d PostTransactionData
			err := json.Unmarshal([]byte(tt.payload), &d)
			require.Error(t, err)
			assert.Equal(t, tt.err, err.Error())
		})
	}
}

func TestRedactHidesSecrets(t *testing.T) {
	ctx := context.Background()
	payload := `{"mnemonic_sentence":` + quoted(seed24) + `,"mnemonic_second_factor":` + quoted(sf12) +
		`,"name":"Alan's Wallet","passphrase":"Secure Passphrase"}`

	rec, ok := LookupRecord("wallet-post")
	require.True(t, ok)

	d, err := rec.Decode(ctx, wwjson.New(), []byte(payload))
	require.NoError(t, err)

	out, err := d.Redact(ctx, wwjson.New())
	require.NoError(t, err)
	assert.Equal(t,
		`{"mnemonic_sentence":"***","mnemonic_second_factor":"***","name":"A***** W*****","passphrase":"***"}`,
		string(out))
	assert.NotContains(t, string(out), "abandon")
	assert.NotContains(t, string(out), "Secure")
}

func TestRedactNestedSecrets(t *testing.T) {
	ctx := context.Background()
	payload := `{"targets":[{"address":"Cn8eVZg","amount":{"quantity":1,"unit":"lovelace"}}],"passphrase":"Secure Passphrase"}`

	rec, ok := LookupRecord("transaction-post")
	require.True(t, ok)
	d, err := rec.Decode(ctx, wwjson.New(), []byte(payload))
	require.NoError(t, err)

	out, err := d.Redact(ctx, wwjson.New())
	require.NoError(t, err)
	assert.Equal(t,
		`{"targets":[{"address":"*******","amount":{"quantity":1,"unit":"lovelace"}}],"passphrase":"***"}`,
		string(out))
}

func TestRecordConvert(t *testing.T) {
	ctx := context.Background()

	rec, ok := LookupRecord("wallet")
	require.True(t, ok)

	d, err := rec.Decode(ctx, wwjson.New(), []byte(testWalletJSON))
	require.NoError(t, err)

	asYAML, err := d.Send(ctx, wwyaml.New())
	require.NoError(t, err)

	back, err := rec.Decode(ctx, wwyaml.New(), asYAML)
	require.NoError(t, err)

	asJSON, err := back.Send(ctx, wwjson.New())
	require.NoError(t, err)
	assert.Equal(t, testWalletJSON, string(asJSON))
}

func TestRecords(t *testing.T) {
	var names []string
	for _, r := range Records() {
		names = append(names, r.Name)
		assert.NotEmpty(t, r.TypeName)
	}
	assert.Equal(t, []string{
		"address",
		"transaction-post",
		"wallet",
		"wallet-post",
		"wallet-put",
		"wallet-put-passphrase",
	}, names)

	_, ok := LookupRecord("nope")
	assert.False(t, ok)
}
