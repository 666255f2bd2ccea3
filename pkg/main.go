package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	pkg "git.solsynth.dev/hypernet/meetup/pkg/internal"
	"git.solsynth.dev/hypernet/meetup/pkg/internal/cache"
	"git.solsynth.dev/hypernet/meetup/pkg/internal/database"
	"git.solsynth.dev/hypernet/meetup/pkg/internal/events"
	"git.solsynth.dev/hypernet/meetup/pkg/internal/http"
	"git.solsynth.dev/hypernet/meetup/pkg/internal/http/admin"
	"git.solsynth.dev/hypernet/meetup/pkg/internal/http/api"
	"git.solsynth.dev/hypernet/meetup/pkg/internal/services"
	"github.com/fatih/color"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
}

func main() {
	// Booting screen
	fmt.Println(color.YellowString(" __  __           _   _   _\n|  \\/  | ___  ___| |_| | | |_ __\n| |\\/| |/ _ \\/ _ \\ __| | | | '_ \\\n| |  | |  __/  __/ |_| |_| | |_) |\n|_|  |_|\\___|\\___|\\__|\\___/| .__/\n                           |_|"))
	fmt.Printf("%s v%s\n", color.New(color.FgHiYellow).Add(color.Bold).Sprintf("Hypernet.MeetUp"), pkg.AppVersion)
	fmt.Printf("The meetup listing service in Hypernet\n")
	color.HiBlack("=====================================================\n")

	// Configure settings
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.SetConfigName("settings")
	viper.SetConfigType("toml")
	viper.SetEnvPrefix("MEETUP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Load settings
	if err := viper.ReadInConfig(); err != nil {
		log.Panic().Err(err).Msg("An error occurred when loading settings.")
	}

	if len(viper.GetString("security.jwt_secret")) == 0 {
		log.Warn().Msg("No jwt secret configured. Authentication related features will be disabled.")
	}

	// Connect to database
	if err := database.NewGorm(); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when connect to database.")
	} else if err := database.RunMigration(database.C); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when running database auto migration.")
	}

	// Initialize cache
	if err := cache.NewStore(); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when initializing cache.")
	}

	// Connect to message broker
	var publisher *events.AmqpPublisher
	var eventPublisher services.MeetUpEventPublisher
	if url := viper.GetString("messaging.amqp_url"); len(url) > 0 {
		publisher = events.NewAmqpPublisher(url, viper.GetString("messaging.queue"))
		eventPublisher = publisher
		log.Info().Str("queue", lo.Ternary(len(viper.GetString("messaging.queue")) > 0, viper.GetString("messaging.queue"), events.DefaultQueue)).Msg("Meetup events will be published.")
	}

	// Configure timed tasks
	quartz := cron.New(cron.WithLogger(cron.VerbosePrintfLogger(&log.Logger)))
	quartz.AddFunc("@every 60m", func() {
		services.DoAutoDatabaseCleanup(database.C)
	})
	quartz.Start()

	// Server
	server := http.NewServer(
		&api.Controllers{
			MeetUps:       services.NewMeetUpService(database.C, eventPublisher),
			Subscriptions: services.NewSubscriptionService(database.C),
			Preferences:   services.NewPreferenceService(database.C),
			Categories:    services.NewCategoryService(database.C, cache.S),
		},
		&admin.Controllers{
			DB: database.C,
			Admins: lo.Map(viper.GetIntSlice("security.admins"), func(item int, _ int) uint {
				return uint(item)
			}),
		},
	)
	go server.Listen()

	// Messages
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	quartz.Stop()
	_ = server.Shutdown()
	if publisher != nil {
		_ = publisher.Close()
	}
}
