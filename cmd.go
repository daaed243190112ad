package main

import (
	"github.com/spf13/cobra"
)

func SetupCommands() *cobra.Command {
	var (
		configFile string
		listenFlag string
		dbPathFlag string
		apiURLFlag string
	)

	// root command
	rootCmd := &cobra.Command{
		Use:   "quickcal",
		Short: "A calendar with month, week and day views",
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to YAML config file (optional)")
	rootCmd.PersistentFlags().StringVar(&listenFlag, "listen", "", "API listen address (overrides config)")
	rootCmd.PersistentFlags().StringVar(&dbPathFlag, "db", "", "Path to the sqlite database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&apiURLFlag, "api-url", "", "Base URL of the API (overrides config)")

	loadConfig := func() (*Config, error) {
		return LoadConfig(configFile, listenFlag, dbPathFlag, apiURLFlag)
	}

	newApp := func() (*App, error) {
		cfg, err := loadConfig()
		if err != nil {
			return nil, err
		}
		return NewApp(NewEventStore(NewAPIClient(cfg.APIURL))), nil
	}

	// command for running the REST API server
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the event API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			repo, err := NewRepo(cfg.DBPath)
			if err != nil {
				return err
			}
			defer repo.Close()

			return newAPIServer(repo).Run(cfg.Listen)
		},
	}

	// command for the interactive calendar
	uiCmd := &cobra.Command{
		Use:   "ui",
		Short: "Browse the calendar interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			return app.RunUI()
		},
	}

	// command for printing a single view
	displayCmd := &cobra.Command{
		Use:   "display [month|week|day]",
		Short: "Print the current month, week or day view",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			view := "month"
			if len(args) > 0 {
				view = args[0]
			}

			app, err := newApp()
			if err != nil {
				return err
			}
			return app.Display(view)
		},
	}

	// command for listing all events as a table
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all events",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			return app.ListEvents()
		},
	}

	// command for creating an event
	var (
		addDesc  string
		addStart string
		addEnd   string
		addColor string
	)
	addCmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Create an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			draft := eventDraft{
				Title: args[0],
				Color: addColor,
			}
			if addDesc != "" {
				draft.Description = &addDesc
			}

			var err error
			if draft.StartDateTime, err = parseUserTime(addStart); err != nil {
				return err
			}
			if draft.EndDateTime, err = parseUserTime(addEnd); err != nil {
				return err
			}

			app, err := newApp()
			if err != nil {
				return err
			}
			return app.AddEvent(draft)
		},
	}
	addCmd.Flags().StringVar(&addStart, "start", "", "Start date/time, e.g. \"2024-03-04 09:00\"")
	addCmd.Flags().StringVar(&addEnd, "end", "", "End date/time")
	addCmd.Flags().StringVar(&addDesc, "desc", "", "Description (optional)")
	addCmd.Flags().StringVar(&addColor, "color", "", "Hex display color (optional)")
	_ = addCmd.MarkFlagRequired("start")
	_ = addCmd.MarkFlagRequired("end")

	// command for partially updating an event
	var (
		editTitle string
		editDesc  string
		editStart string
		editEnd   string
		editColor string
	)
	editCmd := &cobra.Command{
		Use:   "edit [id]",
		Short: "Update fields of an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch eventPatch
			if cmd.Flags().Changed("title") {
				patch.Title = &editTitle
			}
			if cmd.Flags().Changed("desc") {
				patch.Description = &editDesc
			}
			if cmd.Flags().Changed("color") {
				patch.Color = &editColor
			}
			if cmd.Flags().Changed("start") {
				start, err := parseUserTime(editStart)
				if err != nil {
					return err
				}
				patch.StartDateTime = &start
			}
			if cmd.Flags().Changed("end") {
				end, err := parseUserTime(editEnd)
				if err != nil {
					return err
				}
				patch.EndDateTime = &end
			}

			app, err := newApp()
			if err != nil {
				return err
			}
			return app.EditEvent(args[0], patch)
		},
	}
	editCmd.Flags().StringVar(&editTitle, "title", "", "New title")
	editCmd.Flags().StringVar(&editDesc, "desc", "", "New description")
	editCmd.Flags().StringVar(&editStart, "start", "", "New start date/time")
	editCmd.Flags().StringVar(&editEnd, "end", "", "New end date/time")
	editCmd.Flags().StringVar(&editColor, "color", "", "New hex display color")

	// command for deleting an event
	rmCmd := &cobra.Command{
		Use:   "rm [id]",
		Short: "Delete an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			return app.RemoveEvent(args[0])
		},
	}

	// add commands
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(uiCmd)
	rootCmd.AddCommand(displayCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(rmCmd)

	return rootCmd
}
