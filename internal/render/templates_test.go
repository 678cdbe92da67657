package render

import (
	"bytes"
	"html/template"
	"testing"
	"time"

	"github.com/gin-gonic/gin/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeAgo(t *testing.T) {
	now := time.Now()
	tests := []struct {
		at   time.Time
		want string
	}{
		{now, "только что"},
		{now.Add(-5 * time.Minute), "5 мин. назад"},
		{now.Add(-3 * time.Hour), "3 ч. назад"},
		{now.Add(-2 * 24 * time.Hour), "2 дн. назад"},
		{now.Add(-65 * 24 * time.Hour), "2 мес. назад"},
		{now.Add(-800 * 24 * time.Hour), "2 г. назад"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TimeAgo(tt.at))
	}
}

func TestFuncMap(t *testing.T) {
	tmpl := template.Must(template.New("t").Funcs(FuncMap()).Parse(
		`{{with dict "A" 1 "B" "x"}}{{.A}}-{{.B}}{{end}} {{add 2 3}} {{date .}} {{datetime .}}`))

	var buf bytes.Buffer
	require.NoError(t, tmpl.Execute(&buf, time.Date(2024, 3, 5, 14, 7, 0, 0, time.UTC)))
	assert.Equal(t, "1-x 5 05.03.2024 05.03.2024 14:07", buf.String())
}

func TestTemplates_LoadsEveryView(t *testing.T) {
	r := Templates("../../web/templates")
	for _, name := range Views {
		html, ok := r.Instance(name, nil).(render.HTML)
		require.True(t, ok, name)
		assert.NotNil(t, html.Template, name)
	}
}
