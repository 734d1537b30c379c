//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/jsphweid/ragakey/cmd"
	"github.com/jsphweid/ragakey/config"
	"github.com/jsphweid/ragakey/model"
	"github.com/stretchr/testify/assert"
)

var srv *httptest.Server

func TestMain(m *testing.M) {
	srv = httptest.NewServer(cmd.NewServer(config.Default()).Handler())

	exitVal := m.Run()

	srv.Close()
	os.Exit(exitVal)
}

func createEvaluateReqBody(scale []string, base string) io.Reader {
	data, err := json.Marshal(model.EvaluateRequestBody{Scale: scale, Base: base})
	if err != nil {
		panic(err.Error())
	}
	return bytes.NewReader(data)
}

func postEvaluate(t *testing.T, scale []string, base string) (*http.Response, []byte) {
	resp, err := http.Post(srv.URL+"/evaluate", "application/json", createEvaluateReqBody(scale, base))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return resp, body
}

func TestBilawalFromCE2E(t *testing.T) {
	resp, body := postEvaluate(t, []string{"S", "R", "G", "m", "P", "D", "N"}, "C")

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)

	var res model.EvaluateResponse
	if err := json.Unmarshal(body, &res); err != nil {
		t.Fatal(err)
	}
	assert.Equal([]string{"C", "D", "E", "F", "G", "A", "B"}, res.Western)
	assert.Len(res.Results, 12)
	for i := 1; i < len(res.Results); i++ {
		assert.GreaterOrEqual(res.Results[i-1].Score, res.Results[i].Score)
	}
}

func TestInvalidSymbolE2E(t *testing.T) {
	resp, body := postEvaluate(t, []string{"S", "Z", "G"}, "C")

	assert := assert.New(t)
	assert.Equal(400, resp.StatusCode)

	var res model.ErrorResponse
	if err := json.Unmarshal(body, &res); err != nil {
		t.Fatal(err)
	}
	assert.Contains(res.Error, `"Z"`)
}

func TestCorsPreflightE2E(t *testing.T) {
	req, _ := http.NewRequest(http.MethodOptions, srv.URL+"/evaluate", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}
