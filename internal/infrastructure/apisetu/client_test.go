package apisetu_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/iec-registro/internal/domain"
	"github.com/jhoicas/iec-registro/internal/domain/entity"
	"github.com/jhoicas/iec-registro/internal/infrastructure/apisetu"
)

const acmePayload = `{"iecNumber":"0312345678","entityName":"Acme Traders","address1":"12 Park Rd","city":"Pune","state":"MH","pinCode":411001,"iecStatus":0,"iecIssueDate":"2020-01-01"}`

// newStub levanta un servidor que responde status/body fijos y registra la última petición.
func newStub(t *testing.T, status int, body string) (*httptest.Server, *atomic.Pointer[http.Request], *atomic.Int32) {
	t.Helper()
	var last atomic.Pointer[http.Request]
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		last.Store(r.Clone(context.Background()))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &last, &calls
}

func newClient(baseURL string) *apisetu.Client {
	return apisetu.NewClient(apisetu.Config{
		BaseURL:  baseURL + "/",
		APIKey:   "test-key",
		ClientID: "test-client",
		Timeout:  5 * time.Second,
	}, nil, zerolog.Nop())
}

func TestVerify_AcmeActivo(t *testing.T) {
	srv, last, calls := newStub(t, http.StatusOK, acmePayload)

	company, err := newClient(srv.URL).Verify(context.Background(), "0312345678")
	require.NoError(t, err)

	assert.Equal(t, int32(1), calls.Load(), "una sola llamada a la autoridad")
	req := last.Load()
	require.NotNil(t, req)
	assert.Equal(t, "/dgft/v3/iec/0312345678", req.URL.Path)
	assert.Equal(t, "test-key", req.Header.Get("X-APISETU-APIKEY"))
	assert.Equal(t, "test-client", req.Header.Get("X-APISETU-CLIENTID"))
	assert.Equal(t, "application/json", req.Header.Get("Accept"))

	assert.Equal(t, "0312345678", company.IECCode)
	assert.Equal(t, "Acme Traders", company.CompanyName)
	assert.Equal(t, "12 Park Rd", company.Address)
	require.NotNil(t, company.City)
	assert.Equal(t, "Pune", *company.City)
	require.NotNil(t, company.State)
	assert.Equal(t, "MH", *company.State)
	require.NotNil(t, company.Pincode)
	assert.Equal(t, "411001", *company.Pincode)
	assert.Equal(t, "India", company.Country)
	assert.Equal(t, entity.CompanyStatusActive, company.Status)
	require.NotNil(t, company.ValidFrom)
	assert.Equal(t, "2020-01-01", *company.ValidFrom)
	assert.Nil(t, company.Email)
	assert.Nil(t, company.Phone)
	assert.JSONEq(t, acmePayload, string(company.RawAPIResponse))
	assert.Equal(t, acmePayload, string(company.RawAPIResponse), "el payload se conserva sin modificar")
}

func TestVerify_StatusDistintoDeCeroEsInactivo(t *testing.T) {
	for _, status := range []string{`1`, `2`, `"7"`, `null`} {
		body := `{"iecNumber":"0312345678","entityName":"X","iecStatus":` + status + `}`
		srv, _, _ := newStub(t, http.StatusOK, body)

		company, err := newClient(srv.URL).Verify(context.Background(), "0312345678")
		require.NoError(t, err)
		assert.Equal(t, entity.CompanyStatusInactive, company.Status, "iecStatus=%s", status)
	}

	srv, _, _ := newStub(t, http.StatusOK, `{"iecNumber":"0312345678","iecStatus":"0"}`)
	company, err := newClient(srv.URL).Verify(context.Background(), "0312345678")
	require.NoError(t, err)
	assert.Equal(t, entity.CompanyStatusActive, company.Status)
}

func TestVerify_SinIdentificadorEsNotFound(t *testing.T) {
	srv, _, _ := newStub(t, http.StatusOK, `{"entityName":"Ghost","iecStatus":0}`)

	company, err := newClient(srv.URL).Verify(context.Background(), "0000000000")
	require.Error(t, err)
	assert.Nil(t, company)

	de := domain.AsError(err)
	assert.Equal(t, domain.KindNotFound, de.Kind)
	assert.Equal(t, http.StatusNotFound, de.HTTPStatus())
	assert.Equal(t, "Invalid IEC code. Please check and try again.", de.Message)
}

func TestVerify_IdentificadorCeroOFalsoEsNotFound(t *testing.T) {
	for _, number := range []string{`0`, `"0"`, `false`, `""`, `null`} {
		srv, _, _ := newStub(t, http.StatusOK, `{"iecNumber":`+number+`,"entityName":"Ghost","iecStatus":0}`)

		company, err := newClient(srv.URL).Verify(context.Background(), "0000000000")
		assert.Nil(t, company, "iecNumber=%s", number)
		assert.Equal(t, domain.KindNotFound, domain.KindOf(err), "iecNumber=%s", number)
	}
}

func TestVerify_StatusDeTipoInesperadoEsInactivo(t *testing.T) {
	for _, status := range []string{`true`, `false`, `{"code":0}`, `[0]`} {
		srv, _, _ := newStub(t, http.StatusOK, `{"iecNumber":"0312345678","entityName":"X","iecStatus":`+status+`}`)

		company, err := newClient(srv.URL).Verify(context.Background(), "0312345678")
		require.NoError(t, err, "iecStatus=%s", status)
		assert.Equal(t, entity.CompanyStatusInactive, company.Status, "iecStatus=%s", status)
	}
}

func TestVerify_ErrorHTTPPropagaStatusYDescripcion(t *testing.T) {
	srv, _, _ := newStub(t, http.StatusUnauthorized, `{"error":"invalid_key","errorDescription":"API key is invalid"}`)

	_, err := newClient(srv.URL).Verify(context.Background(), "0312345678")
	de := domain.AsError(err)
	assert.Equal(t, domain.KindUpstream, de.Kind)
	assert.Equal(t, http.StatusUnauthorized, de.HTTPStatus())
	assert.Equal(t, "API key is invalid", de.Message)
}

func TestVerify_ErrorHTTPSinCuerpo(t *testing.T) {
	srv, _, _ := newStub(t, http.StatusBadGateway, `<html>bad gateway</html>`)

	_, err := newClient(srv.URL).Verify(context.Background(), "0312345678")
	de := domain.AsError(err)
	assert.Equal(t, domain.KindUpstream, de.Kind)
	assert.Equal(t, http.StatusBadGateway, de.HTTPStatus())
	assert.Equal(t, "Failed to verify IEC code from external API (Status: 502)", de.Message)
}

func TestVerify_CuerpoInvalido(t *testing.T) {
	srv, _, _ := newStub(t, http.StatusOK, `not json`)

	_, err := newClient(srv.URL).Verify(context.Background(), "0312345678")
	de := domain.AsError(err)
	assert.Equal(t, domain.KindUpstream, de.Kind)
	assert.Equal(t, http.StatusInternalServerError, de.HTTPStatus())
	assert.Equal(t, "IEC verification failed", de.Message)
	assert.Contains(t, de.Error(), "decodificar respuesta", "la causa queda disponible para el log")
}

func TestVerify_ServidorCaido(t *testing.T) {
	srv, _, _ := newStub(t, http.StatusOK, acmePayload)
	base := srv.URL
	srv.Close()

	_, err := newClient(base).Verify(context.Background(), "0312345678")
	de := domain.AsError(err)
	assert.Equal(t, domain.KindUpstream, de.Kind)
	assert.Equal(t, http.StatusInternalServerError, de.HTTPStatus())
	assert.Equal(t, "IEC verification failed", de.Message)
	assert.NotContains(t, de.Message, base, "la URL de la autoridad no llega al llamador")
	assert.NotContains(t, de.Message, "dial")
	require.Error(t, de.Err)
}

func TestVerify_DeadlineDelLlamador(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-block:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() {
		close(block)
		srv.Close()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := newClient(srv.URL).Verify(ctx, "0312345678")
	de := domain.AsError(err)
	assert.Equal(t, domain.KindUpstream, de.Kind)
	assert.Equal(t, http.StatusGatewayTimeout, de.HTTPStatus())
}

func TestVerify_ValoresPorDefecto(t *testing.T) {
	srv, _, _ := newStub(t, http.StatusOK, `{"iecNumber":1234567890,"address2":"  Unit 4 ","pinCode":"560001"}`)

	company, err := newClient(srv.URL).Verify(context.Background(), "1234567890")
	require.NoError(t, err)
	assert.Equal(t, "N/A", company.CompanyName)
	assert.Equal(t, "Unit 4", company.Address)
	assert.Nil(t, company.City)
	assert.Nil(t, company.State)
	require.NotNil(t, company.Pincode)
	assert.Equal(t, "560001", *company.Pincode)
	assert.Nil(t, company.ValidFrom)
	assert.Equal(t, entity.CompanyStatusInactive, company.Status)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(company.RawAPIResponse, &raw))
	assert.EqualValues(t, 1234567890, raw["iecNumber"])
}
