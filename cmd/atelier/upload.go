package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/atelier"
	atgjson "github.com/fwojciec/atelier/gjson"
)

// Run executes the upload command and prints the URL of the stored image.
func (c *UploadCmd) Run(deps *Dependencies) error {
	f, err := os.Open(c.File)
	if err != nil {
		return fail(deps, atelier.Errorf(atelier.EINVALID, "open %s: %v", c.File, err))
	}
	defer f.Close()

	raw, err := deps.API.UploadImage(deps.Ctx, atelier.Upload{
		Filename: filepath.Base(c.File),
		Content:  f,
	})
	if err != nil {
		return fail(deps, err)
	}

	obj := atgjson.Parse(raw).Object("image", "file")
	url := obj.Get("url").String()
	if url == "" {
		url = obj.Get("path").String()
	}
	if url == "" {
		return fail(deps, atelier.Errorf(atelier.EINTERNAL, "upload response carried no url"))
	}
	fmt.Fprintln(deps.Stdout, url)
	return nil
}
