package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"autoscale/internal/domain/entities"
	"autoscale/internal/domain/repositories"
	"autoscale/internal/domain/scalebar"
	"autoscale/internal/infrastructure/config"
	"autoscale/internal/infrastructure/images"
	"autoscale/internal/infrastructure/logging"
	"autoscale/internal/infrastructure/render"
	infraRepos "autoscale/internal/infrastructure/repositories"
	"autoscale/internal/interface/controllers"
	"autoscale/internal/presentation/tui"
	usecases "autoscale/internal/usecase"
)

func main() {
	configPath := flag.String("config", "config.yaml", "путь к файлу конфигурации")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Использование: %s [-config config.yaml] [image ...]\n", os.Args[0])
		fmt.Fprintln(flag.CommandLine.Output(), "Без аргументов запускается интерактивный режим.")
		flag.PrintDefaults()
	}
	flag.Parse()

	// Рабочая директория фиксируется один раз при старте
	workDir, err := os.Getwd()
	if err != nil {
		log.Fatalf("Не удалось определить рабочую директорию: %v", err)
	}

	configRepo := config.NewRepository(workDir)
	appConfig, err := configRepo.Load(*configPath)
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	if flag.NArg() > 0 {
		runCLI(appConfig, flag.Args())
		return
	}

	runTUI(appConfig, configRepo, *configPath)
}

// runCLI размечает файлы из аргументов и завершается с кодом 0
func runCLI(appConfig *entities.Config, paths []string) {
	logger := logging.NewConsoleLogger(os.Stderr, appConfig.Output.LogLevel)

	annotator := newAnnotator(appConfig, logger)
	settings := infraRepos.NewSettingsRepository(appConfig.Annotation)
	controller := controllers.NewCLIController(
		usecases.NewAnnotateFilesUseCase(annotator, settings, logger),
		usecases.NewAnnotateOptions(appConfig),
		os.Stdout,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := controller.HandleFiles(ctx, paths); err != nil {
		logger.Warning("%v", err)
	}
}

// runTUI запускает интерактивный режим и сохраняет выбранные папки при выходе
func runTUI(appConfig *entities.Config, configRepo repositories.AppConfigRepository, configPath string) {
	fileLogger, err := logging.NewFileLogger(
		appConfig.Output.LogFileName,
		appConfig.Output.LogLevel,
		appConfig.Output.LogMaxSizeMB,
		appConfig.Output.LogToFile,
	)
	if err != nil {
		log.Printf("Предупреждение: не удалось инициализировать логгер: %v", err)
	}

	// nil *FileLogger внутри интерфейса не равен nil, поэтому передаем nil явно
	var next repositories.Logger
	if fileLogger != nil {
		next = fileLogger
	}

	tuiManager := tui.NewManager(
		tui.State{
			InputDirectory:        appConfig.Scanner.InputDirectory,
			OutputDirectory:       appConfig.Scanner.OutputDirectory,
			IncludeSubdirectories: appConfig.Scanner.IncludeSubdirectories,
			Lowercase:             appConfig.Annotation.Lowercase,
		},
		tui.PreviewOptions{
			Enabled:   appConfig.Preview.Enabled,
			MaxWidth:  appConfig.Preview.MaxWidth,
			MaxHeight: appConfig.Preview.MaxHeight,
		},
	)

	// Оборачиваем логгер адаптером, чтобы видеть логи в TUI
	logger := tui.NewUILogger(next, tuiManager)
	defer logger.Close()

	fileRepo := infraRepos.NewFileSystemRepository()
	settings := infraRepos.NewSettingsRepository(appConfig.Annotation)

	annotator := newAnnotator(appConfig, logger)
	scanner := usecases.NewScanDirectoryUseCase(fileRepo, settings, appConfig.Scanner.Extensions, logger)
	batch := usecases.NewRunBatchUseCase(annotator, logger)

	// Подключаем репортер прогресса к TUI
	batch.SetProgressReporter(tuiManager.SendStatusUpdate)

	processor := NewApplicationProcessor(
		usecases.NewFileRegistry(scanner),
		batch,
		annotator,
		appConfig,
		logger,
	)
	defer processor.Shutdown()

	// Ctrl+C в TUI приходит как клавиша, а цикл событий занят обработкой.
	// Сигналы завершения доставляются отдельно и прерывают пакет между файлами.
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(signals)
	go func() {
		if _, ok := <-signals; ok {
			logger.Warning("Получен сигнал завершения, обработка прерывается")
			processor.Shutdown()
			tuiManager.Stop()
		}
	}()

	tuiManager.SetController(processor)
	tuiManager.Initialize()

	if err := tuiManager.Run(); err != nil {
		log.Fatalf("Ошибка запуска TUI: %v", err)
	}

	// Cleanup при выходе
	tuiManager.Cleanup()

	state := tuiManager.State()
	appConfig.Scanner.InputDirectory = state.InputDirectory
	appConfig.Scanner.OutputDirectory = state.OutputDirectory
	appConfig.Scanner.IncludeSubdirectories = state.IncludeSubdirectories
	appConfig.Annotation.Lowercase = state.Lowercase
	if err := configRepo.Save(configPath, appConfig); err != nil {
		log.Printf("Предупреждение: не удалось сохранить конфигурацию: %v", err)
	}
}

// newAnnotator собирает сценарий разметки одного изображения
func newAnnotator(appConfig *entities.Config, logger repositories.Logger) *usecases.AnnotateImageUseCase {
	fonts, err := render.NewFontProvider(appConfig.Annotation.FontPath)
	if err != nil {
		logger.Warning("Используется встроенный шрифт: %v", err)
	}

	return usecases.NewAnnotateImageUseCase(
		scalebar.NewEngine(),
		images.NewStore(),
		render.NewRenderer(fonts),
		infraRepos.NewFileSystemRepository(),
		logger,
	)
}
