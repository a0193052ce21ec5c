package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// stubAPI routes the book and prices endpoints of the metadata service.
func stubAPI(t *testing.T) http.Handler {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.Contains(r.URL.Path, "/book/9781400079988"):
			fmt.Fprint(w, `{"data":[{
				"title":"Crime and Punishment",
				"isbn10":"1400079985",
				"isbn13":"9781400079988",
				"author_data":[{"id":"dostoevsky_fyodor","name":"Dostoevsky, Fyodor"}],
				"publisher_name":"Vintage",
				"subject_ids":["fiction","russia"]
			}]}`)
		case strings.Contains(r.URL.Path, "/prices/9781400079988"):
			fmt.Fprint(w, `{"data":[
				{"store_id":"abc","store_title":"A Books","price":8.00,"in_stock":1},
				{"store_id":"xyz","store_title":"X Books","price":12.50,"in_stock":1}
			]}`)
		default:
			fmt.Fprint(w, `{"error":"Not found"}`)
		}
	})
	return mux
}

func TestAddShowCatalogRemoveLifecycle(t *testing.T) {
	env := setupCLITestEnv(t, stubAPI(t))

	out, _, err := runCLI(t, env.configPath, "add", "9781400079988")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	requireContains(t, out, "Inserted Crime and Punishment (9781400079988) into library.")

	// adding again reports the duplicate instead of calling the API
	out, _, err = runCLI(t, env.configPath, "add", "9781400079988")
	if err != nil {
		t.Fatalf("add duplicate: %v", err)
	}
	requireContains(t, out, "already in library")

	out, _, err = runCLI(t, env.configPath, "show", "Crime")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	requireContains(t, out, "Crime and Punishment (9781400079988)")
	requireContains(t, out, "Dostoevsky, Fyodor")
	requireContains(t, out, "$8.00")

	target := filepath.Join(t.TempDir(), "catalog.html")
	out, _, err = runCLI(t, env.configPath, "catalog", "--output", target)
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	requireContains(t, out, "Wrote catalog of 1 books")
	html, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read catalog: %v", err)
	}
	requireContains(t, string(html), "Crime and Punishment")
	// min price 8.00 sells for 10.00, yours for 7.00
	requireContains(t, string(html), "$10.00")
	requireContains(t, string(html), "$7.00")

	out, _, err = runCLI(t, env.configPath, "remove", "9781400079988")
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	requireContains(t, out, "Removed Crime and Punishment (9781400079988) from library.")

	_, _, err = runCLI(t, env.configPath, "show", "9781400079988")
	if err == nil {
		t.Fatal("expected show after remove to fail")
	}
}

func TestAddUnknownIdentifierReportsNotFound(t *testing.T) {
	env := setupCLITestEnv(t, stubAPI(t))

	out, _, err := runCLI(t, env.configPath, "add", "9999999999999")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	requireContains(t, out, "Cannot find \"9999999999999\" in library or online")
}

func TestRemoveMissingBookFails(t *testing.T) {
	env := setupCLITestEnv(t, stubAPI(t))

	_, _, err := runCLI(t, env.configPath, "remove", "9781400079988")
	if err == nil {
		t.Fatal("expected remove of absent book to fail")
	}
}
