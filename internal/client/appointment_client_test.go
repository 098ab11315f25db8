package client

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PraDhYoT2709/PatientManageentSystem-Microservice/chatbot-service/internal/domain"
)

func TestHTTPAppointmentClient_Book(t *testing.T) {
	var (
		gotPath string
		gotBody []byte
	)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := NewHTTPAppointmentClient(func() string { return srv.URL }, time.Second)

	doctor := "Lee"
	date := "2024-05-01"
	res, err := c.Book(context.Background(), domain.ExtractedEntities{DoctorName: &doctor, Date: &date})

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, res.StatusCode)
	assert.Equal(t, "/book", gotPath)
	assert.JSONEq(t, `{"doctorName": "Lee", "date": "2024-05-01"}`, string(gotBody))
}

func TestHTTPAppointmentClient_BaseURLResolvedPerCall(t *testing.T) {
	srvA := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `"a"`)
	}))
	defer srvA.Close()
	srvB := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `"b"`)
	}))
	defer srvB.Close()

	target := srvA.URL
	c := NewHTTPAppointmentClient(func() string { return target }, time.Second)

	res, err := c.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, `"a"`, string(res.Body))

	target = srvB.URL

	res, err = c.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, `"b"`, string(res.Body))
}

func TestHTTPAppointmentClient_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := NewHTTPAppointmentClient(func() string { return srv.URL }, time.Second)

	_, err := c.List(context.Background())
	assert.Error(t, err)
}
