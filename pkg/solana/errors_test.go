package solana

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ybbus/jsonrpc"
)

func TestParseTransactionError_String(t *testing.T) {
	txErr, err := ParseTransactionError("AccountNotFound")
	require.NoError(t, err)
	assert.Equal(t, TransactionErrorAccountNotFound, txErr.ErrorKey())
	assert.Nil(t, txErr.InstructionError())
}

func TestParseTransactionError_Custom(t *testing.T) {
	raw := map[string]interface{}{
		"InstructionError": []interface{}{
			json.Number("4"),
			map[string]interface{}{
				"Custom": json.Number("311"),
			},
		},
	}

	txErr, err := ParseTransactionError(raw)
	require.NoError(t, err)
	assert.Equal(t, TransactionErrorInstructionError, txErr.ErrorKey())

	instructionErr := txErr.InstructionError()
	require.NotNil(t, instructionErr)
	assert.Equal(t, 4, instructionErr.Index)

	customErr := instructionErr.CustomError()
	require.NotNil(t, customErr)
	assert.Equal(t, CustomError(0x137), *customErr)
	assert.Contains(t, customErr.Error(), "0x137")
}

func TestParseTransactionError_Nil(t *testing.T) {
	txErr, err := ParseTransactionError(nil)
	require.NoError(t, err)
	assert.Nil(t, txErr)
}

func TestParseRPCError(t *testing.T) {
	rpcErr := &jsonrpc.RPCError{
		Code:    -32002,
		Message: "Transaction simulation failed",
		Data: map[string]interface{}{
			"err": map[string]interface{}{
				"InstructionError": []interface{}{
					float64(0),
					map[string]interface{}{
						"Custom": float64(0x138),
					},
				},
			},
		},
	}

	txErr, err := ParseRPCError(rpcErr)
	require.NoError(t, err)
	require.NotNil(t, txErr)

	instructionErr := txErr.InstructionError()
	require.NotNil(t, instructionErr)
	customErr := instructionErr.CustomError()
	require.NotNil(t, customErr)
	assert.Equal(t, CustomError(0x138), *customErr)
}
