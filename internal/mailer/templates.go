package mailer

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"path"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/labstack/gommon/log"
)

const (
	TemplateVerification = "verification.html"
	TemplateReset        = "reset.html"
)

//go:embed templates/*.html
var defaultTemplates embed.FS

type TemplateData struct {
	Link string
}

// TemplateSet holds the parsed email bodies. When a template directory is
// configured it is watched for edits in development so copy changes take
// effect without a restart.
type TemplateSet struct {
	mu        sync.RWMutex
	templates *template.Template
	watcher   *fsnotify.Watcher
	dir       string
	logger    *log.Logger
}

func LoadTemplates(dir string, watch bool, logger *log.Logger) (*TemplateSet, error) {
	set := &TemplateSet{dir: dir, logger: logger}

	if dir == "" {
		templates, err := template.ParseFS(defaultTemplates, "templates/*.html")
		if err != nil {
			return nil, fmt.Errorf("parsing embedded templates: %w", err)
		}
		set.templates = templates
		return set, nil
	}

	templates, err := template.ParseGlob(path.Join(dir, "*.html"))
	if err != nil {
		return nil, fmt.Errorf("parsing templates in %s: %w", dir, err)
	}
	set.templates = templates

	if watch {
		if err := set.startWatcher(); err != nil {
			return nil, err
		}
	}
	return set, nil
}

func (t *TemplateSet) startWatcher() error {
	var err error

	t.watcher, err = fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating template watcher: %w", err)
	}

	go func() {
		for {
			select {
			case event, ok := <-t.watcher.Events:
				if !ok {
					return
				}
				if event.Has(fsnotify.Write) {
					t.logger.Infof("reloading email templates: %s", event.Name)
					templates, err := template.ParseGlob(path.Join(t.dir, "*.html"))
					if err != nil {
						t.logger.Errorf("reparsing templates: %+v", err)
						continue
					}
					t.mu.Lock()
					t.templates = templates
					t.mu.Unlock()
				}
			case err, ok := <-t.watcher.Errors:
				if !ok {
					return
				}
				t.logger.Errorf("template watcher: %+v", err)
			}
		}
	}()

	if err := t.watcher.Add(t.dir); err != nil {
		return fmt.Errorf("watching template directory: %w", err)
	}
	return nil
}

func (t *TemplateSet) Close() error {
	if t.watcher != nil {
		return t.watcher.Close()
	}
	return nil
}

func (t *TemplateSet) Render(name string, data *TemplateData) (string, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	buf := &bytes.Buffer{}
	if err := t.templates.ExecuteTemplate(buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
