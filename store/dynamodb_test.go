package store

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dynamoCall struct {
	Target string
	Body   map[string]any
}

// newFakeDynamo serves every call with status and body and records what it was sent.
func newFakeDynamo(t *testing.T, status int, body string) (*DynamoBackend, *[]dynamoCall) {
	t.Helper()
	var calls []dynamoCall

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		call := dynamoCall{Target: r.Header.Get("X-Amz-Target")}
		assert.NoError(t, json.Unmarshal(raw, &call.Body))
		calls = append(calls, call)

		w.Header().Set("Content-Type", "application/x-amz-json-1.0")
		w.WriteHeader(status)
		io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)

	cfg := aws.Config{
		Region:      "us-east-1",
		Credentials: credentials.NewStaticCredentialsProvider("AKID", "SECRET", ""),
	}
	client := dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		o.BaseEndpoint = aws.String(srv.URL)
		o.RetryMaxAttempts = 1
	})
	return &DynamoBackend{client: client, tableName: "storefront_slots"}, &calls
}

func TestDynamoBackendGet(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantFound   bool
		wantPayload string
		wantErr     bool
	}{
		{
			name:   "missing item is not found",
			status: http.StatusOK,
			body:   `{}`,
		},
		{
			name:        "stored item is returned",
			status:      http.StatusOK,
			body:        `{"Item":{"slot_key":{"S":"cart"},"payload":{"S":"[{\"quantity\":1}]"},"updated_at":{"S":"2025-03-01T00:00:00Z"}}}`,
			wantFound:   true,
			wantPayload: `[{"quantity":1}]`,
		},
		{
			name:    "service error is reported",
			status:  http.StatusBadRequest,
			body:    `{"__type":"com.amazonaws.dynamodb.v20120810#ResourceNotFoundException","message":"Requested resource not found"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, calls := newFakeDynamo(t, tt.status, tt.body)

			payload, found, err := b.Get(context.Background(), CartKey)
			if tt.wantErr {
				require.Error(t, err)
				assert.False(t, found)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantFound, found)
			if tt.wantFound {
				assert.JSONEq(t, tt.wantPayload, string(payload))
			} else {
				assert.Nil(t, payload)
			}

			require.Len(t, *calls, 1)
			call := (*calls)[0]
			assert.Equal(t, "DynamoDB_20120810.GetItem", call.Target)
			assert.Equal(t, "storefront_slots", call.Body["TableName"])
			assert.Equal(t, map[string]any{"slot_key": map[string]any{"S": CartKey}}, call.Body["Key"])
		})
	}
}

func TestDynamoBackendPut(t *testing.T) {
	b, calls := newFakeDynamo(t, http.StatusOK, `{}`)

	require.NoError(t, b.Put(context.Background(), OrdersKey, []byte(`[]`)))

	require.Len(t, *calls, 1)
	call := (*calls)[0]
	assert.Equal(t, "DynamoDB_20120810.PutItem", call.Target)
	assert.Equal(t, "storefront_slots", call.Body["TableName"])

	item, ok := call.Body["Item"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, map[string]any{"S": OrdersKey}, item["slot_key"])
	assert.Equal(t, map[string]any{"S": "[]"}, item["payload"])
	assert.Contains(t, item, "updated_at")
}
