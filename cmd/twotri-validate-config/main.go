package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/fosdem/twotri/lib/config"
	"github.com/jhenstridge/go-inotify"
)

func main() {
	watchPtr := flag.Bool("watch", false, "Validate again every time the file is written")
	flag.Parse()
	if flag.NArg() < 1 {
		log.Fatalf("Usage: %s [-watch] <config file>", os.Args[0])
	}
	filename := flag.Arg(0)

	ok := validate(filename)
	if !*watchPtr {
		if !ok {
			os.Exit(1)
		}
		return
	}

	err := watch(filename)
	if err != nil {
		log.Fatal(err)
	}
}

func validate(filename string) bool {
	cfg, err := config.Parse(filename)
	if err != nil {
		fmt.Printf("Config invalid: %s\n", err)
		return false
	}

	fmt.Print("Config valid!\n\n")

	fmt.Print(cfg)
	return true
}

func watch(filename string) error {
	watcher, err := inotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("could not start inotify watcher: %w", err)
	}
	defer func(watcher *inotify.Watcher) {
		err := watcher.Close()
		if err != nil {
			return
		}
	}(watcher)

	_, err = watcher.Watch(filename)
	if err != nil {
		return fmt.Errorf("could not watch %s: %w", filename, err)
	}

	for ev := range watcher.Event {
		if ev.Mask&inotify.IN_CLOSE_WRITE != 0 {
			// editors may write in several steps
			time.Sleep(100 * time.Millisecond)
			fmt.Printf("\n--- %s changed\n", filename)
			validate(filename)
		}
	}
	return nil
}
