package frontend_test

import (
	"io"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/launchdash/frontend"
)

func TestGetHTTPFS(t *testing.T) {
	fs, err := frontend.GetHTTPFS()
	gt.NoError(t, err).Required()

	for _, name := range []string{"/index.html", "/app.js", "/style.css"} {
		f, err := fs.Open(name)
		gt.NoError(t, err).Required()
		data, err := io.ReadAll(f)
		gt.NoError(t, err)
		gt.NoError(t, f.Close())
		gt.True(t, len(data) > 0)
	}
}
