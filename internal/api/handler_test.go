package api

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alexiusacademia/gorcw/internal/log"
	"github.com/alexiusacademia/gorcw/internal/version"
	"go.uber.org/zap"
)

const referenceRow = `{"tag":"W1","l_w":200,"h_w":20,"h_tw":300,"phi_t":12,"num_bars":10,"s":25,
"f_c":28,"f_y":420,"f_ce":28,"f_ye":420}`

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	log.SetLogger(zap.NewNop())
	srv := httptest.NewServer(NewRouter(&Handler{DefaultLambda: 1.0}))
	t.Cleanup(srv.Close)
	return srv
}

func TestCapacity(t *testing.T) {
	srv := newServer(t)

	resp, err := http.Post(srv.URL+"/api/capacity", "application/json", strings.NewReader(referenceRow))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var got CapacityResponse
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatal(err)
	}

	rho := math.Pi * 360 / 500
	want := 0.6 * 4000 * (0.083*0.25*math.Sqrt(28) + rho*420)
	if got.Tag != "W1" || math.Abs(got.DesignStandard-want) > 1e-6*want {
		t.Errorf("got %+v, want φVn standard %v", got, want)
	}
	if got.AlphaC != 0.25 || got.PhiAnnex != 0.9 {
		t.Errorf("alpha_c = %v, phi_annex = %v", got.AlphaC, got.PhiAnnex)
	}
}

func TestCapacityErrors(t *testing.T) {
	srv := newServer(t)

	tests := []struct {
		name   string
		body   string
		status int
		field  string
	}{
		{"malformed json", `{"tag":`, http.StatusBadRequest, ""},
		{"zero wall length", strings.Replace(referenceRow, `"l_w":200`, `"l_w":0`, 1), http.StatusUnprocessableEntity, "l_w"},
		{"zero expected concrete", strings.Replace(referenceRow, `"f_ce":28`, `"f_ce":0`, 1), http.StatusUnprocessableEntity, "f_ce"},
		{"negative concrete", strings.Replace(referenceRow, `"f_c":28`, `"f_c":-1`, 1), http.StatusUnprocessableEntity, "f_c"},
		{"explicit zero lambda", strings.Replace(referenceRow, `"f_ye":420}`, `"f_ye":420,"lambda_c":0}`, 1), http.StatusUnprocessableEntity, "lambda_c"},
		{"capacity overflow", strings.Replace(referenceRow, `"f_y":420,"f_ce":28,"f_ye":420`, `"f_y":1e306,"f_ce":28,"f_ye":1e306`, 1), http.StatusUnprocessableEntity, "nominal_capacity_standard"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Post(srv.URL+"/api/capacity", "application/json", strings.NewReader(tt.body))
			if err != nil {
				t.Fatal(err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.status {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.status)
			}
			var body errorResponse
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
				t.Fatal(err)
			}
			if body.Field != tt.field {
				t.Errorf("field = %q, want %q", body.Field, tt.field)
			}
		})
	}
}

func TestBatch(t *testing.T) {
	srv := newServer(t)

	bad := strings.Replace(strings.Replace(referenceRow, `"W1"`, `"W2"`, 1), `"s":25`, `"s":0`, 1)
	third := strings.Replace(referenceRow, `"W1"`, `"W3"`, 1)
	body := "[" + referenceRow + "," + bad + "," + third + "]"

	resp, err := http.Post(srv.URL+"/api/batch", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var items []BatchItem
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		t.Fatal(err)
	}
	if len(items) != 3 {
		t.Fatalf("got %d items", len(items))
	}
	if items[0].Tag != "W1" || items[0].Result == nil {
		t.Errorf("item 0 = %+v", items[0])
	}
	if items[1].Tag != "W2" || items[1].Result != nil || !strings.Contains(items[1].Error, "s=0") {
		t.Errorf("item 1 = %+v", items[1])
	}
	if items[2].Tag != "W3" || items[2].Result == nil {
		t.Errorf("item 2 = %+v", items[2])
	}
}

func TestAlpha(t *testing.T) {
	srv := newServer(t)

	resp, err := http.Get(srv.URL + "/api/alpha?r=1.75")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var got map[string]float64
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatal(err)
	}
	if math.Abs(got["alpha_c"]-0.21) > 1e-12 {
		t.Errorf("alpha_c = %v, want 0.21", got["alpha_c"])
	}

	resp, err = http.Get(srv.URL + "/api/alpha?r=abc")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestHealthz(t *testing.T) {
	srv := newServer(t)

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}

	var body healthResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.Status != "ok" || body.Build.Version != version.Version {
		t.Errorf("healthz = %+v", body)
	}
}
