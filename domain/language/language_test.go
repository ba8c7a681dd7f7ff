package language

import "testing"

func TestFromCode(t *testing.T) {
	lang, ok := FromCode("en")
	if !ok {
		t.Fatal("en should be a known language")
	}
	if lang.Code() != "en" || lang.Name() != "English" {
		t.Errorf("unexpected language: %s %s", lang.Code(), lang.Name())
	}

	if _, ok := FromCode("EN"); !ok {
		t.Error("lookup should be case-insensitive")
	}
	if _, ok := FromCode("zz"); ok {
		t.Error("unknown code should miss")
	}
}

func TestDefault(t *testing.T) {
	if Default().Code() != "ru" {
		t.Errorf("Default() = %s, want ru", Default().Code())
	}
}

func TestHostAndURLs(t *testing.T) {
	lang, _ := FromCode("de")
	if lang.Host() != "de.wikipedia.org" {
		t.Errorf("Host() = %s", lang.Host())
	}
	if lang.APIURL() != "https://de.wikipedia.org/w/api.php" {
		t.Errorf("APIURL() = %s", lang.APIURL())
	}
	got := lang.ArticleURL("Gößweinstein (Burg)")
	want := "https://de.wikipedia.org/wiki/G%C3%B6%C3%9Fweinstein%20(Burg)"
	if got != want {
		t.Errorf("ArticleURL() = %s, want %s", got, want)
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantCode  string
		wantQuery string
	}{
		{"explicit prefix", "en: golang", "en", "golang"},
		{"prefix without space", "de:Berlin", "de", "Berlin"},
		{"no prefix falls back to default", "golang", "ru", "golang"},
		{"unknown prefix kept in query", "zz: golang", "ru", "zz: golang"},
		{"colon beyond prefix length", "wikipedia: search", "ru", "wikipedia: search"},
		{"leading colon ignored", ":golang", "ru", ":golang"},
		{"uppercase prefix", "EN: golang", "en", "golang"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lang, query := Resolve(tt.raw)
			if lang.Code() != tt.wantCode {
				t.Errorf("language = %s, want %s", lang.Code(), tt.wantCode)
			}
			if query != tt.wantQuery {
				t.Errorf("query = %q, want %q", query, tt.wantQuery)
			}
		})
	}
}

func TestAllReturnsCopy(t *testing.T) {
	all := All()
	if len(all) == 0 {
		t.Fatal("catalog is empty")
	}
	first := all[0]
	all[0] = Language{}
	if All()[0] != first {
		t.Error("All() leaked the internal catalog slice")
	}
}

func TestPopular(t *testing.T) {
	popular := Popular()
	if len(popular) == 0 {
		t.Fatal("no popular languages")
	}
	if popular[0].Code() != "ru" {
		t.Errorf("first popular language = %s, want ru", popular[0].Code())
	}
}
