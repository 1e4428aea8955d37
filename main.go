package main

import (
	"log"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	rss2maildir "github.com/ov/rss2maildir/lib"
)

func init() {
	pflag.String("config", "config.yaml", "config file path")
	pflag.String("cache", "", "cache directory override")
	pflag.Bool("daemon", false, "run forever in a loop")

	pflag.Parse()
	viper.BindPFlag("config", pflag.Lookup("config"))
	viper.BindPFlag("daemon", pflag.Lookup("daemon"))

	rss2maildir.SetDefaults()

	// an unset --cache must not shadow the configured cache directory
	if f := pflag.Lookup("cache"); f.Changed {
		viper.Set("cache", f.Value.String())
	}

	viper.SetConfigFile(viper.GetString("config"))

	err := viper.ReadInConfig()

	if err != nil {
		log.Fatal(err)
	}
}

func main() {
	lock, ok, err := rss2maildir.AcquireLock()

	if err != nil {
		log.Fatal(err)
	}

	if !ok {
		log.Println("Another copy of rss2maildir is running")
		return
	}

	defer lock.Unlock()

	feeds, err := rss2maildir.LoadFeeds()

	if err != nil {
		log.Fatal(err)
	}

	fetcher := rss2maildir.NewFetcher()
	delivery := rss2maildir.NewMaildirDelivery()

	for {
		rss2maildir.ProcessAllFeeds(feeds, fetcher, delivery)

		if !viper.GetBool("daemon") {
			break
		} else {
			t := viper.GetInt("daemon.delay")

			if viper.GetBool("debug") {
				log.Printf("Sleeping in a loop for %d minutes", t)
			}

			time.Sleep(time.Minute * time.Duration(t))
		}
	}
}
