// confweb serves the run configuration registry: a small JSON API that
// validates posted bcbio configurations and records accepted runs in sqlite.
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	_ "github.com/carbocation/bcbioconf/compileinfoprint"
)

var global *Global

func main() {
	errs := make(chan error, 1)
	sig := make(chan os.Signal, 1)
	signal.Notify(sig,
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGUSR1,
	)

	registryPath := flag.String("registry", "runs.sqlite3", "Path to the sqlite file holding the run registry. Will be created if it does not yet exist.")
	site := flag.String("site", "bcbioconf", "Site name reported by the index endpoint.")
	port := flag.Int("port", 9019, "Port for HTTP server")
	flag.Parse()

	db, err := openRegistry(*registryPath)
	if err != nil {
		log.Fatalln(err)
	}
	defer db.Close()

	global = &Global{
		log:          log.New(os.Stderr, log.Prefix(), log.Ldate|log.Ltime),
		db:           db,
		Site:         *site,
		RegistryPath: *registryPath,
	}

	global.log.Println("Launching", global.Site)

	go func() {
		global.log.Println("Starting HTTP server on port", *port)
		if err := http.ListenAndServe(fmt.Sprintf(`:%d`, *port), router(global)); err != nil {
			errs <- err
			global.log.Println(err)
			sig <- syscall.SIGTERM
			return
		}
	}()

Outer:
	for {
		select {
		case sigl := <-sig:
			if sigl == syscall.SIGUSR1 {
				SigStatus()
				continue
			}

			// By default, exit
			global.log.Printf("\nExit: %s\n", sigl.String())

			break Outer

		case err := <-errs:
			if err == nil {
				global.log.Println("Finished")
				break Outer
			}

			// Return a status code indicating failure
			global.log.Println("Exiting due to error", err)
			os.Exit(1)
		}
	}
}

func SigStatus() {
	global.log.Println("There are", runtime.NumGoroutine(), "goroutines running")
}
