// Package scaffold writes the two fixed artifacts a bundler needs to wrap a
// compiled wasm module for the browser: the JS bootstrap entry point and the
// HTML host page.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
)

// The bootstrap imports the module without an extension so the bundler's
// resolver picks the compiled output, then calls its exported entry function.
const jsIndexTemplate = `void async function () {
    const js = await import("./%s");
    js.web_main()
}();
`

const htmlIndexTemplate = `<html>
    <head>
        <meta content="text/html;charset=utf-8" http-equiv="Content-Type"/>
    </head>
    <body>
        <script src='./%s.js'></script>
    </body>
</html>
`

// WriteError reports a failed artifact write, tagged by which artifact was
// being written.
type WriteError struct {
	Artifact string
	Err      error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Artifact, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// WriteJSIndex writes the bootstrap index.js into dir, overwriting any
// existing file, and returns its path.
func WriteJSIndex(targetName, dir string) (string, error) {
	path := filepath.Join(dir, "index.js")
	content := fmt.Sprintf(jsIndexTemplate, targetName)
	if err := writeThrough(path, []byte(content)); err != nil {
		return "", &WriteError{Artifact: "index.js", Err: err}
	}
	return path, nil
}

// WriteHTMLIndex writes the host page <target>.html into dir, overwriting any
// existing file, and returns its path.
func WriteHTMLIndex(targetName, dir string) (string, error) {
	name := targetName + ".html"
	path := filepath.Join(dir, name)
	content := fmt.Sprintf(htmlIndexTemplate, targetName)
	if err := writeThrough(path, []byte(content)); err != nil {
		return "", &WriteError{Artifact: name, Err: err}
	}
	return path, nil
}

// writeThrough creates or truncates path and guarantees flush-then-close on
// every exit path. There is no atomic rename; callers accept a torn file on
// crash.
func writeThrough(path string, data []byte) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := file.Write(data); err != nil {
		file.Close()
		return err
	}
	if err := file.Sync(); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
