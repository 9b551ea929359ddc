package main

import (
	"flag"
	"fmt"

	"github.com/heathj/htmlir/dom"
	"github.com/sirupsen/logrus"
)

func buildPage() (*dom.Node, error) {
	html := dom.MustElement("html")
	head := dom.MustElement("head")
	title := dom.MustElement("title")
	script := dom.MustElement("script")
	steps := []struct {
		parent, child *dom.Node
	}{
		{html, head},
		{head, title},
		{title, dom.NewText("JLearner")},
		{head, script},
		{script, dom.NewText("alert('Hello world!')")},
	}
	for _, s := range steps {
		if err := s.parent.AddChild(s.child); err != nil {
			return nil, err
		}
	}
	return html, nil
}

func main() {
	debug := flag.Bool("debug", false, "log every tree mutation")
	flag.Parse()
	if *debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	page, err := buildPage()
	if err != nil {
		logrus.WithError(err).Fatal("building page")
	}
	fmt.Println(page)
}
