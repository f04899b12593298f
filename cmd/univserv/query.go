package main

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/campusops/univserv/internal/store"
	"github.com/campusops/univserv/internal/styles"
	"github.com/campusops/univserv/internal/table"
)

func (a *App) handleQuery() {
	if len(os.Args) < 3 {
		printError("Usage: univserv query <name|id>")
	}

	selector := os.Args[2]
	start := time.Now()
	result, err := a.store.Run(selector)
	elapsed := time.Since(start)
	if err != nil {
		printError("Could not execute query: %v", err)
	}

	fmt.Println(table.RenderWithTitle(selector, result))
	fmt.Println(styles.Faint.Render(fmt.Sprintf("In %.2fs", elapsed.Seconds())))
}

func (a *App) handleList() {
	queries := make([]store.Query, 0, len(store.Catalog))
	for _, q := range store.Catalog {
		queries = append(queries, q)
	}
	sort.Slice(queries, func(i, j int) bool { return queries[i].Id < queries[j].Id })

	for _, q := range queries {
		fmt.Println(styles.Title.Render(fmt.Sprintf("\n◆ %s (%d)", q.Name, q.Id)))
		fmt.Println(q.SQL)
	}
}
