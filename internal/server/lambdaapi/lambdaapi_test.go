package lambdaapi

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/dmitrijs2005/imagevault/internal/common"
	"github.com/dmitrijs2005/imagevault/internal/logging"
	"github.com/dmitrijs2005/imagevault/internal/server/api"
	"github.com/dmitrijs2005/imagevault/internal/server/httpapi"
	"github.com/dmitrijs2005/imagevault/internal/server/idgen"
	"github.com/dmitrijs2005/imagevault/internal/server/objectstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdapter(t *testing.T) *Adapter {
	t.Helper()
	n := 0
	ids := idgen.Func(func() string {
		n++
		return fmt.Sprintf("l%d", n)
	})
	s, err := api.NewInMemory(objectstore.NewMemory(""), ids, nil)
	require.NoError(t, err)
	return New(httpapi.New(s, logging.Nop{}), logging.Nop{})
}

func TestHandle_ReserveThroughProxyEvent(t *testing.T) {
	a := newAdapter(t)

	resp, err := a.Handle(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod:     http.MethodPost,
		Path:           "/images/upload-url",
		Headers:        map[string]string{"Content-Type": "application/json"},
		Body:           `{"owner_id":"u1","display_name":"a.gif","content_type":"image/gif","byte_size":5}`,
		RequestContext: events.APIGatewayProxyRequestContext{RequestID: "apigw-1"},
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode, resp.Body)
	assert.Equal(t, "apigw-1", resp.Headers[http.CanonicalHeaderKey(common.RequestIDHeader)])
	assert.Equal(t, "*", resp.Headers["Access-Control-Allow-Origin"])

	var out api.ReserveUploadResponse
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &out))
	assert.Equal(t, "l1", out.AssetID)
}

func TestHandle_QueryAndErrors(t *testing.T) {
	a := newAdapter(t)

	resp, err := a.Handle(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod:            http.MethodGet,
		Path:                  "/images",
		QueryStringParameters: map[string]string{"limit": "0"},
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body api.ErrorResponse
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &body))
	assert.Equal(t, "ValidationError", body.Error)

	resp, err = a.Handle(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod:                      http.MethodGet,
		Path:                            "/images",
		MultiValueQueryStringParameters: map[string][]string{"owner_id": {"u1"}},
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHandle_Base64Body(t *testing.T) {
	a := newAdapter(t)

	resp, err := a.Handle(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod:      http.MethodDelete,
		Path:            "/images/missing",
		Body:            base64.StdEncoding.EncodeToString([]byte(`{"owner_id":"u1"}`)),
		IsBase64Encoded: true,
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, err = a.Handle(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod:      http.MethodPost,
		Path:            "/images/complete",
		Body:            "%%%",
		IsBase64Encoded: true,
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandle_UnknownRoute(t *testing.T) {
	a := newAdapter(t)

	resp, err := a.Handle(context.Background(), events.APIGatewayProxyRequest{HTTPMethod: http.MethodGet, Path: "/nope"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
