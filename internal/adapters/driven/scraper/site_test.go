package scraper

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/mevzuat-cli/internal/core/domain"
)

const searchPage = `<html><body>
<div class="search-result">
  <h3 class="title"> Katma Değer Vergisi Kanunu </h3>
  <a href="/mevzuat?no=3065">Görüntüle</a>
  <p class="content"> KDV oranı %20'dir. </p>
  <span class="date"> 02.11.1984 </span>
</div>
<div class="search-result">
  <h3 class="title">Gelir Vergisi Kanunu</h3>
  <a href="https://example.org/193">Görüntüle</a>
</div>
<div class="search-result">
  <h3 class="title">Bağlantısız sonuç</h3>
</div>
<div class="search-result">
  <a href="/mevzuat?no=1">Başlıksız</a>
</div>
</body></html>`

func newTestSite(t *testing.T, handler http.HandlerFunc) (*Site, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	site := NewSite(Config{
		Name:           domain.SourceMevzuat,
		BaseURL:        srv.URL + "/",
		SearchPath:     "/arama.aspx",
		ResultSelector: ".search-result",
		Timeout:        5 * time.Second,
		Rate:           rate.Inf,
	})
	return site, srv
}

func TestSite_Search(t *testing.T) {
	var gotQuery, gotAgent, gotPath string
	site, srv := newTestSite(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("q")
		gotAgent = r.Header.Get("User-Agent")
		fmt.Fprint(w, searchPage)
	})

	records, err := site.Search(context.Background(), "KDV oranı")

	require.NoError(t, err)
	assert.Equal(t, "/arama.aspx", gotPath)
	assert.Equal(t, "KDV oranı", gotQuery)
	assert.Equal(t, UserAgent, gotAgent)

	require.Len(t, records, 2)
	assert.Equal(t, domain.RegulationRecord{
		Title:   "Katma Değer Vergisi Kanunu",
		Link:    srv.URL + "/mevzuat?no=3065",
		Content: "KDV oranı %20'dir.",
		Date:    "02.11.1984",
		Source:  domain.SourceMevzuat,
	}, records[0])
	assert.Equal(t, "https://example.org/193", records[1].Link)
	assert.Empty(t, records[1].Content)
	assert.Empty(t, records[1].Date)
}

func TestSite_Search_KeepsEmptyTitleElement(t *testing.T) {
	site, srv := newTestSite(t, func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `<html><body>
<div class="search-result">
  <h3 class="title">  </h3>
  <a href="/mevzuat?no=7">Görüntüle</a>
</div>
<div class="search-result">
  <h3 class="title">Bağlantı niteliği yok</h3>
  <a>Görüntüle</a>
</div>
</body></html>`)
	})

	records, err := site.Search(context.Background(), "vergi")

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Empty(t, records[0].Title)
	assert.Equal(t, srv.URL+"/mevzuat?no=7", records[0].Link)
}

func TestSite_Search_NoResults(t *testing.T) {
	site, _ := newTestSite(t, func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, "<html><body><p>Sonuç bulunamadı</p></body></html>")
	})

	records, err := site.Search(context.Background(), "yok")

	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestSite_Search_ServerError(t *testing.T) {
	site, _ := newTestSite(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	records, err := site.Search(context.Background(), "vergi")

	assert.ErrorIs(t, err, domain.ErrNetwork)
	assert.Nil(t, records)
}

func TestSite_Search_Unreachable(t *testing.T) {
	site := NewSite(Config{
		Name:           domain.SourceResmiGazete,
		BaseURL:        "http://127.0.0.1:1",
		SearchPath:     "/arama",
		ResultSelector: ".gazette-result",
		Timeout:        time.Second,
		Rate:           rate.Inf,
	})

	_, err := site.Search(context.Background(), "vergi")

	assert.ErrorIs(t, err, domain.ErrNetwork)
}

func TestSite_Search_CancelledContext(t *testing.T) {
	site, _ := newTestSite(t, func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, searchPage)
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := site.Search(ctx, "vergi")

	assert.ErrorIs(t, err, domain.ErrNetwork)
}

func TestSite_PageContent(t *testing.T) {
	site, srv := newTestSite(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/with-content":
			fmt.Fprint(w, `<html><body><nav>Menü</nav><div class="content"> Madde 1 - Bu Kanun... </div></body></html>`)
		case "/plain":
			fmt.Fprint(w, `<html><head><title>T</title></head><body><p>Birinci</p><p>İkinci</p></body></html>`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	assert.Equal(t, "Madde 1 - Bu Kanun...", site.PageContent(context.Background(), srv.URL+"/with-content"))
	assert.Equal(t, "Birinci\nİkinci", site.PageContent(context.Background(), "/plain"))
	assert.Empty(t, site.PageContent(context.Background(), srv.URL+"/missing"))
}

func TestConfigs(t *testing.T) {
	mevzuat := MevzuatConfig()
	assert.Equal(t, domain.SourceMevzuat, mevzuat.Name)
	assert.Equal(t, "https://www.mevzuat.gov.tr", mevzuat.BaseURL)
	assert.Equal(t, "/arama.aspx", mevzuat.SearchPath)
	assert.Equal(t, ".search-result", mevzuat.ResultSelector)

	gazette := ResmiGazeteConfig()
	assert.Equal(t, domain.SourceResmiGazete, gazette.Name)
	assert.Equal(t, "https://www.resmigazete.gov.tr", gazette.BaseURL)
	assert.Equal(t, "/arama", gazette.SearchPath)
	assert.Equal(t, ".gazette-result", gazette.ResultSelector)
}

func TestNewSite_Defaults(t *testing.T) {
	site := NewSite(MevzuatConfig())

	assert.Equal(t, domain.SourceMevzuat, site.Name())
	assert.Equal(t, DefaultTimeout, site.cfg.Timeout)
	assert.Equal(t, rate.Limit(DefaultRate), site.cfg.Rate)
}
