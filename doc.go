// Package walletwire is the typed wire boundary of a wallet API.
//
// Untyped wire data (JSON, YAML, msgpack, BSON, bare text) is turned into
// validated domain values here, once, so business logic never sees an
// invalid address, name, passphrase or mnemonic.
//
// # Text codecs
//
// A TextCodec pairs a total Encode with a validating Decode for one type.
// Codecs are explicit values, collected in a Registry when they must be
// found by name:
//
//	reg := walletwire.NewRegistry()
//	_ = walletwire.Register(reg, "wallet-name", api.WalletNameText)
//	v, err := reg.Decode("wallet-name", "")
//	// err: name is too short: expected at least 1 character
//
// # Schemas
//
// Records cross the wire through a Schema: an ordered field table built
// once per type. Wire keys default to the snake_case Go field name,
// optional fields are omitted rather than null, and decoding stops at the
// first invalid field:
//
//	var walletPutSchema = walletwire.MustSchema(
//	    walletwire.Optional("Name", func(r *WalletPutData) **primitive.WalletName { return &r.Name },
//	        walletwire.FromText(WalletNameText)),
//	)
//
// Scalar fields decode through FromText or Decimal, which hand the wire
// value to the same TextCodec used for bare text. Multi-variant values use
// TaggedUnion:
//
//	{"status":"delegating","target":"27522fe5-262e-42a5-8ccb-cef884ea2ba0"}
//
// # Processors
//
// A Processor binds a Schema to a Codec (see the json, yaml, msgpack and
// bson packages) and emits capitan signals for each operation:
//
//	proc := walletwire.NewProcessor(json.New(), api.WalletPostSchema)
//	data, err := proc.Receive(ctx, body)   // validate
//	out, err := proc.Send(ctx, data)       // encode
//	safe, err := proc.Redact(ctx, data)    // encode for logs
//
// # Errors
//
// Every decode failure is a *DecodeError carrying a human readable message
// and, inside documents, the path of the offending value. errors.Is(err,
// ErrDecode) holds for all of them.
package walletwire
