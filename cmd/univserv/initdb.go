package main

func (a *App) handleInitDB() {
	if err := a.store.Init(); err != nil {
		printError("Could not initialize schema: %v", err)
	}
	printSuccess("Tables and views created in %s", a.config.Database)
}
