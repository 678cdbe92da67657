package render

import (
	"fmt"
	"html/template"
	"log"
	"path/filepath"
	"time"
	"yanews/internal/utils"

	"github.com/gin-contrib/multitemplate"
)

// Views are the page templates under <dir>/views, registered under their relative names.
var Views = []string{
	"news/home.html",
	"news/detail.html",
	"comment/edit.html",
	"comment/delete.html",
	"auth/login.html",
	"auth/signup.html",
	"auth/logout.html",
	"error.html",
}

// Templates assembles every view with the shared layout, includes and components.
func Templates(templatesDir string) multitemplate.Renderer {
	r := multitemplate.NewRenderer()

	layouts, err := filepath.Glob(templatesDir + "/layouts/*.html")
	if err != nil {
		panic(err)
	}
	if len(layouts) == 0 {
		log.Fatalf("No layouts found in %s", templatesDir)
	}

	includes, err := filepath.Glob(templatesDir + "/includes/*.html")
	if err != nil {
		panic(err)
	}

	components, err := filepath.Glob(templatesDir + "/components/*.html")
	if err != nil {
		panic(err)
	}

	// layout first: its file name is the template that gets executed
	assemble := func(view string) []string {
		files := make([]string, 0)
		files = append(files, layouts...)
		files = append(files, includes...)
		files = append(files, components...)
		files = append(files, view)
		return files
	}

	funcMap := FuncMap()
	for _, name := range Views {
		r.AddFromFilesFuncs(name, funcMap, assemble(filepath.Join(templatesDir, "views", name))...)
	}

	return r
}

func FuncMap() template.FuncMap {
	return template.FuncMap{
		"dict": func(values ...interface{}) (map[string]interface{}, error) {
			if len(values)%2 != 0 {
				return nil, fmt.Errorf("invalid dict call")
			}
			dict := make(map[string]interface{}, len(values)/2)
			for i := 0; i < len(values); i += 2 {
				key, ok := values[i].(string)
				if !ok {
					return nil, fmt.Errorf("dict keys must be strings")
				}
				dict[key] = values[i+1]
			}
			return dict, nil
		},
		"add": func(a, b int) int {
			return a + b
		},
		"markdown": utils.RenderMarkdown,
		"date": func(t time.Time) string {
			return t.Format("02.01.2006")
		},
		"datetime": func(t time.Time) string {
			return t.Format("02.01.2006 15:04")
		},
		"timeAgo": TimeAgo,
	}
}

// TimeAgo formats the distance from t to now in short Russian units.
func TimeAgo(t time.Time) string {
	seconds := int(time.Since(t).Seconds())

	if seconds < 60 {
		return "только что"
	} else if seconds < 3600 {
		return fmt.Sprintf("%d мин. назад", seconds/60)
	} else if seconds < 86400 {
		return fmt.Sprintf("%d ч. назад", seconds/3600)
	} else if seconds < 2592000 {
		return fmt.Sprintf("%d дн. назад", seconds/86400)
	} else if seconds < 31536000 {
		return fmt.Sprintf("%d мес. назад", seconds/2592000)
	}
	return fmt.Sprintf("%d г. назад", seconds/31536000)
}
