package http_test

import (
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dispatchhttp "dispatch/internal/adapters/in/http"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/generated/servers"
)

// postStatusUpdate drives the status endpoint with the given JSON body.
// The requests below are rejected before any handler runs, so a zero-value
// server is enough.
func postStatusUpdate(t *testing.T, body string) (*httptest.ResponseRecorder, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(nethttp.MethodPost, "/api/delivery/orders/x/status", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	s := &dispatchhttp.Server{}
	return rec, s.UpdateDeliveryStatus(c, kernel.NewUUID().Bytes())
}

func TestUpdateDeliveryStatus_EmptyStatus_Rejected(t *testing.T) {
	rec, err := postStatusUpdate(t, `{"status": ""}`)
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)

	var response servers.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, nethttp.StatusBadRequest, response.Code)
	assert.Contains(t, response.Message, "status")
}

func TestUpdateDeliveryStatus_UnknownStatus_Rejected(t *testing.T) {
	rec, err := postStatusUpdate(t, `{"status": "teleported"}`)
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
}
