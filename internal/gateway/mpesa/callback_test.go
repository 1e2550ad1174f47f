//go:build unit

package mpesa_test

import (
	"encoding/json"
	"testing"

	"tembea/internal/gateway/mpesa"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallbackEnvelope_Parse(t *testing.T) {
	t.Run("successful payment carries receipt and phone metadata", func(t *testing.T) {
		raw := []byte(`{
			"Body": {
				"stkCallback": {
					"MerchantRequestID": "29115-34620561-1",
					"CheckoutRequestID": "ws_CO_191220191020363925",
					"ResultCode": 0,
					"ResultDesc": "The service request is processed successfully.",
					"CallbackMetadata": {
						"Item": [
							{"Name": "Amount", "Value": 2500.00},
							{"Name": "MpesaReceiptNumber", "Value": "NLJ7RT61SV"},
							{"Name": "TransactionDate", "Value": 20261230121530},
							{"Name": "PhoneNumber", "Value": 254712345678}
						]
					}
				}
			}
		}`)

		var envelope mpesa.CallbackEnvelope
		require.NoError(t, json.Unmarshal(raw, &envelope))

		cb := envelope.Body.STKCallback
		assert.Equal(t, "ws_CO_191220191020363925", cb.CheckoutRequestID)
		assert.Equal(t, 0, cb.ResultCode)
		assert.Equal(t, "NLJ7RT61SV", cb.ReceiptNumber())
		assert.Equal(t, "254712345678", cb.PhoneNumber())
	})

	t.Run("cancelled payment has no metadata", func(t *testing.T) {
		raw := []byte(`{
			"Body": {
				"stkCallback": {
					"MerchantRequestID": "29115-34620561-2",
					"CheckoutRequestID": "ws_CO_191220191020363926",
					"ResultCode": 1032,
					"ResultDesc": "Request cancelled by user"
				}
			}
		}`)

		var envelope mpesa.CallbackEnvelope
		require.NoError(t, json.Unmarshal(raw, &envelope))

		cb := envelope.Body.STKCallback
		assert.Equal(t, 1032, cb.ResultCode)
		assert.Empty(t, cb.ReceiptNumber())
		assert.Empty(t, cb.PhoneNumber())
	})

	t.Run("string-typed receipt value is accepted", func(t *testing.T) {
		raw := []byte(`{
			"Body": {
				"stkCallback": {
					"CheckoutRequestID": "ws_CO_3",
					"ResultCode": 0,
					"CallbackMetadata": {"Item": [{"Name": "MpesaReceiptNumber", "Value": "SFC9X7K2QL"}]}
				}
			}
		}`)

		var envelope mpesa.CallbackEnvelope
		require.NoError(t, json.Unmarshal(raw, &envelope))
		assert.Equal(t, "SFC9X7K2QL", envelope.Body.STKCallback.ReceiptNumber())
	})
}
