package encoder

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/testconfig"
	"golang.org/x/text/language"
)

func TestReleaseDropsLargeBuffers(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	sc := &scratch{}
	sc.prepare(language.Und)
	sc.out.WriteString(strings.Repeat(".", 2*maxPooledBufferCap))
	releaseScratch(sc)
	if sc.out.Cap() > maxPooledBufferCap {
		t.Errorf("expected large buffer to be dropped, capacity is %d", sc.out.Cap())
	}
	small := &scratch{}
	small.prepare(language.Und)
	small.out.WriteString("... --- ...")
	capacity := small.out.Cap()
	releaseScratch(small)
	if small.out.Len() != 0 || small.out.Cap() != capacity {
		t.Errorf("expected small buffer to be reset and kept, len=%d cap=%d",
			small.out.Len(), small.out.Cap())
	}
}

func TestEncodeAfterHugeInput(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	enc, err := New()
	if err != nil {
		t.Fatal(err)
	}
	huge := enc.Encode(strings.Repeat("e", maxPooledBufferCap))
	if len(huge) != 2*maxPooledBufferCap-1 {
		t.Errorf("unexpected length of huge output: %d", len(huge))
	}
	if out := enc.Encode("SOS"); out != "... --- ..." {
		t.Errorf("expected SOS after huge input, have %q", out)
	}
}
