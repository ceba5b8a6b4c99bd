package owpml

import "testing"

func TestMetadata(t *testing.T) {
	r := newTestReader(t, entry{ContentPath, `<?xml version="1.0"?>
<opf:package xmlns:opf="urn:opf" xmlns:dc="urn:dc" xmlns:dcterms="urn:dcterms">
  <opf:metadata>
    <opf:title/>
    <dc:creator>홍길동</dc:creator>
    <dcterms:modified>2024-02-01</dcterms:modified>
    <opf:meta name="title" content="text">보고서</opf:meta>
    <opf:meta name="CreatedDate" content="text">2024-01-01T09:00:00Z</opf:meta>
  </opf:metadata>
</opf:package>`},
		entry{VersionPath, `<Version><OWPMLVersion>1.4</OWPMLVersion></Version>`},
		entry{SettingsPath, `<Settings><CaretPosition listIDRef="0" paraIDRef="2" pos="5"/></Settings>`},
	)

	md := r.Metadata()
	want := Metadata{
		Title:         "보고서",
		Creator:       "홍길동",
		Created:       "2024-01-01T09:00:00Z",
		Modified:      "2024-02-01",
		Version:       "1.4",
		CaretPosition: "0:2:5",
	}
	if md != want {
		t.Errorf("Metadata() = %+v, want %+v", md, want)
	}
}

func TestMetadataMissingDescriptor(t *testing.T) {
	r := newTestReader(t)
	if md := r.Metadata(); md != (Metadata{}) {
		t.Errorf("expected empty metadata, got %+v", md)
	}

	r = newTestReader(t, entry{VersionPath, `<Version><OWPMLVersion>1.2</OWPMLVersion></Version>`})
	if md := r.Metadata(); md != (Metadata{Version: "1.2"}) {
		t.Errorf("expected version only, got %+v", md)
	}
}

func TestVersion(t *testing.T) {
	tests := []struct {
		name string
		xml  string
		want string
	}{
		{"owpml element", `<Version><OWPMLVersion>1.2</OWPMLVersion></Version>`, "1.2"},
		{"lower case", `<version><owpmlVersion>2.0</owpmlVersion></version>`, "2.0"},
		{"hcf attributes", `<hv:HCFVersion xmlns:hv="urn:hv" tagetApplication="WORDPROCESSOR" major="5" minor="1" micro="1" buildNumber="0" xmlVersion="1.4"/>`, "5.1.1.0"},
		{"malformed", `<Version>`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestReader(t, entry{VersionPath, tt.xml})
			if got := r.Version(); got != tt.want {
				t.Errorf("Version() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCaretPosition(t *testing.T) {
	tests := []struct {
		name string
		xml  string
		want string
	}{
		{"full", `<ha:HWPApplicationSetting xmlns:ha="urn:ha"><ha:CaretPosition listIDRef="1" paraIDRef="3" pos="7"/></ha:HWPApplicationSetting>`, "1:3:7"},
		{"defaults", `<Settings><CaretPosition pos="4"/></Settings>`, "0:0:4"},
		{"empty", `<settings><caretPosition/></settings>`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestReader(t, entry{SettingsPath, tt.xml})
			if got := r.CaretPosition(); got != tt.want {
				t.Errorf("CaretPosition() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInfo(t *testing.T) {
	r := newTestReader(t,
		entry{VersionPath, `<Version><OWPMLVersion>1.4</OWPMLVersion></Version>`},
		entry{SettingsPath, `<Settings><CaretPosition listIDRef="0" paraIDRef="2" pos="5"/></Settings>`},
	)
	info := r.Info()
	if info.Version != "1.4" || info.CaretPosition != "0:2:5" {
		t.Errorf("Info() = %+v", info)
	}
	if info.Metadata != r.Metadata() {
		t.Errorf("Info().Metadata = %+v, want %+v", info.Metadata, r.Metadata())
	}
}
