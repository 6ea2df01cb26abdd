package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/borgmon/study-timetable/pkg/audio"
	"github.com/borgmon/study-timetable/pkg/models"
	"github.com/borgmon/study-timetable/pkg/notify"
	"github.com/borgmon/study-timetable/pkg/platform"
	"github.com/borgmon/study-timetable/pkg/store"
	"github.com/borgmon/study-timetable/pkg/ui/views"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const appID = "com.github.borgmon.study-timetable"

type StudyTimetable struct {
	app            fyne.App
	window         fyne.Window
	config         *models.Config
	configStore    *store.ConfigStore
	logger         *zap.Logger
	notifications  *notify.Queue
	plannerView    *views.PlannerView
	chime          *audio.Player
	settingsWindow *SettingsWindow
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "study-timetable",
		Short:         "Plan a day of study in half-hour slots",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
	}

	cmd.Flags().Bool(keyDebug, false, "enable debug logging")
	cmd.Flags().Int(keyNotificationSeconds, models.DefaultNotificationSeconds, "seconds a notification stays visible")
	cmd.Flags().Bool(keyChimeOnAdd, false, "play a chime after adding a subject")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		v, err := newSettings(cmd.Flags())
		if err != nil {
			return err
		}
		return run(v)
	}
	return cmd
}

func run(v *viper.Viper) error {
	logger, err := newLogger(v.GetBool(keyDebug))
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	st := &StudyTimetable{
		app:    app.NewWithID(appID),
		logger: logger,
	}
	st.initialize(v)
	st.app.Run()
	return nil
}

func (st *StudyTimetable) initialize(v *viper.Viper) {
	st.configStore = store.NewConfigStore(st.app, defaultConfig(v))
	st.config = st.configStore.Load()
	applyOverrides(v, st.config)

	// Sync autostart state with config on startup
	if err := setupAutostart(st.config.AutoStart, st.logger); err != nil {
		st.logger.Warn("failed to setup autostart", zap.Error(err))
	}

	st.notifications = notify.NewQueue(st.config.NotificationDuration())
	st.chime = audio.NewPlayer(0.4, st.logger)

	st.plannerView = views.NewPlannerView(st.notifications, st.logger.Named("planner"))
	st.plannerView.OnAdded = func(models.TimeLabel, string) {
		if st.config.ChimeOnAdd {
			st.chime.Play(audio.SuccessChime)
		}
	}
	st.plannerView.OnChanged = st.updateSystemTrayMenu

	st.window = st.app.NewWindow(views.Title)
	st.window.SetContent(st.plannerView.Content())
	st.window.SetMainMenu(st.buildMainMenu())
	st.window.Resize(fyne.NewSize(640, 820))
	st.window.CenterOnScreen()
	st.window.SetMaster()

	st.setupSystemTray()
	st.window.Show()

	st.logger.Info("study timetable started",
		zap.Duration("notification_ttl", st.notifications.TTL()),
		zap.Bool("chime_on_add", st.config.ChimeOnAdd))
}

// showMainWindow brings the planner back from the tray
func (st *StudyTimetable) showMainWindow() {
	st.window.Show()
	st.window.RequestFocus()
	platform.BringToFront()
}

func (st *StudyTimetable) showSettingsWindow() {
	// If the settings window is already open, just bring it to front
	if st.settingsWindow != nil && st.settingsWindow.window != nil {
		st.settingsWindow.window.RequestFocus()
		st.settingsWindow.window.Show()
		return
	}

	st.settingsWindow = NewSettingsWindow(st.app, st.config, st.logger, func(newConfig *models.Config) {
		st.config = newConfig
		st.configStore.Save(newConfig)
		st.notifications.SetTTL(newConfig.NotificationDuration())
		st.logger.Info("settings saved",
			zap.Bool("auto_start", newConfig.AutoStart),
			zap.Int("notification_seconds", newConfig.NotificationSeconds),
			zap.Bool("chime_on_add", newConfig.ChimeOnAdd))
	})
	st.settingsWindow.window.SetOnClosed(func() {
		st.settingsWindow = nil
	})
	st.settingsWindow.Show()
}

func (st *StudyTimetable) quit() {
	st.chime.Stop()
	st.app.Quit()
}
