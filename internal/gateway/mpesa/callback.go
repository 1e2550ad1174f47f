package mpesa

import "encoding/json"

// CallbackEnvelope is the document Daraja posts to the callback URL after an
// STK push resolves. ResultCode 0 means the customer paid.
type CallbackEnvelope struct {
	Body struct {
		STKCallback STKCallback `json:"stkCallback"`
	} `json:"Body"`
}

type STKCallback struct {
	MerchantRequestID string            `json:"MerchantRequestID"`
	CheckoutRequestID string            `json:"CheckoutRequestID"`
	ResultCode        int               `json:"ResultCode"`
	ResultDesc        string            `json:"ResultDesc"`
	CallbackMetadata  *CallbackMetadata `json:"CallbackMetadata,omitempty"`
}

type CallbackMetadata struct {
	Item []MetadataItem `json:"Item"`
}

type MetadataItem struct {
	Name  string          `json:"Name"`
	Value json.RawMessage `json:"Value,omitempty"`
}

// ReceiptNumber extracts MpesaReceiptNumber from the metadata; empty when the
// payment failed or the field is absent.
func (c *STKCallback) ReceiptNumber() string {
	return c.metadataString("MpesaReceiptNumber")
}

func (c *STKCallback) PhoneNumber() string {
	return c.metadataString("PhoneNumber")
}

func (c *STKCallback) metadataString(name string) string {
	if c.CallbackMetadata == nil {
		return ""
	}
	for _, item := range c.CallbackMetadata.Item {
		if item.Name != name || len(item.Value) == 0 {
			continue
		}
		var s string
		if err := json.Unmarshal(item.Value, &s); err == nil {
			return s
		}
		// Numeric values (phone numbers arrive as integers) round-trip
		// through json.Number to keep full precision.
		var n json.Number
		if err := json.Unmarshal(item.Value, &n); err == nil {
			return n.String()
		}
	}
	return ""
}
