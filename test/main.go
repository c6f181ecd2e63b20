package main

import (
	"fmt"
	"os"

	"github.com/go-logr/logr/funcr"
	"github.com/henderiw/pageritems/pkg/pageritems"
	"k8s.io/apimachinery/pkg/labels"
)

type printAdapter struct {
	store *pageritems.Store
}

func (r *printAdapter) NotifyDataSetChanged() {
	if r.store == nil {
		return
	}
	fmt.Println("refresh, count", r.store.Count())
	for i := 0; i < r.store.Count(); i++ {
		item, err := r.store.Resolve(i)
		if err != nil {
			fmt.Println("  resolve", i, "err", err)
			continue
		}
		fmt.Printf("  %d %s[%d] %v\n", item.Position, item.Part, item.PositionInPart, item.Data)
	}
}

type textFactory struct {
	pageritems.BaseFactory
}

func (r *textFactory) Match(data any) bool {
	_, ok := data.(string)
	return ok
}

func main() {
	logger := funcr.New(func(prefix, args string) {
		fmt.Fprintln(os.Stderr, prefix, args)
	}, funcr.Options{Verbosity: 1})

	a := &printAdapter{}
	s, err := pageritems.New(a, pageritems.WithLogger(logger))
	if err != nil {
		panic(err)
	}
	a.store = s

	if err := s.RegisterFactory(&textFactory{}); err != nil {
		panic(err)
	}
	s.Registry().Lock()

	banner, err := s.AddHeader(&textFactory{}, "banner", pageritems.WithLabels(labels.Set{"kind": "banner"}))
	if err != nil {
		panic(err)
	}
	if _, err := s.AddHeader(&textFactory{}, "intro"); err != nil {
		panic(err)
	}
	if _, err := s.AddFooter(&textFactory{}, "more"); err != nil {
		panic(err)
	}

	s.SetNotifyOnChange(false)
	s.AppendAll("page 1", "page 2", "page 3")
	if err := s.InsertData("page 0", 0); err != nil {
		panic(err)
	}
	s.SetNotifyOnChange(true)
	a.NotifyDataSetChanged()

	banner.SetEnabled(false)
	banner.SetEnabled(true)

	ls, err := labels.Parse("kind=banner")
	if err != nil {
		panic(err)
	}
	for _, e := range s.HeadersByLabel(ls) {
		fmt.Println("entries by label", e.String())
	}

	if err := s.InsertData("page x", 10); err != nil {
		fmt.Println("insert", err)
	}
}
