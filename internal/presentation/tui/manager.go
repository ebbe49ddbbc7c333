package tui

import (
	"context"
	"fmt"
	"image"
	"math"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"autoscale/internal/domain/entities"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// UI Configuration constants
const (
	MaxLogBufferSize   = 1000
	LogFlushInterval   = 50 * time.Millisecond
	ProgressBarWidth   = 30
	MaxFileNameLength  = 48
	MaxFileNameDisplay = 45
	LogViewHeight      = 10

	pageMain  = "main"
	pageModal = "modal"
)

// State папки и флаги, выбранные в интерфейсе
type State struct {
	InputDirectory        string
	OutputDirectory       string
	IncludeSubdirectories bool
	Lowercase             bool
}

// Controller действия приложения, которые вызывает интерфейс
type Controller interface {
	Refresh(state State) error
	Files() []*entities.FileSetting
	SetAllEnabled(value bool)
	CopySettingsToAll(index int) error
	ApplyFieldEdit(index int, field entities.Field, rawValue string) error
	RunBatch(ctx context.Context, state State) (*entities.BatchResult, error)
	Preview(index int) (image.Image, error)
}

// PreviewOptions параметры панели предпросмотра
type PreviewOptions struct {
	Enabled   bool
	MaxWidth  int
	MaxHeight int
}

// Manager управляет TUI интерфейсом
type Manager struct {
	app        *tview.Application
	pages      *tview.Pages
	controller Controller

	// UI компоненты
	inputField   *tview.InputField
	outputField  *tview.InputField
	subdirsBox   *tview.Checkbox
	lowercaseBox *tview.Checkbox
	table        *tview.Table
	previewView  *tview.Image
	logView      *tview.TextView
	statusBar    *tview.TextView
	focusables   []tview.Primitive
	lastFocus    tview.Primitive

	// Состояние
	state        State
	scannedInput string
	preview      PreviewOptions
	lastPreview  *previewKey
	logBuffer    []string
	statusMutex  sync.Mutex

	// Батчинг логов через канал
	logChan  chan string
	logDone  chan struct{}
	logMutex sync.Mutex
}

// NewManager создает новый менеджер TUI
func NewManager(state State, preview PreviewOptions) *Manager {
	m := &Manager{
		app:       tview.NewApplication(),
		pages:     tview.NewPages(),
		state:     state,
		preview:   preview,
		logBuffer: make([]string, 0, MaxLogBufferSize),
		logChan:   make(chan string, 100),
		logDone:   make(chan struct{}),
	}
	go m.logProcessor()
	return m
}

// SetController подключает обработчики действий. Вызывается до Initialize.
func (m *Manager) SetController(controller Controller) {
	m.controller = controller
}

// Initialize строит интерфейс и выполняет первое сканирование
func (m *Manager) Initialize() {
	m.createUI()
	m.setupKeyBindings()
	m.refresh()
}

// Run запускает TUI
func (m *Manager) Run() error {
	return m.app.SetRoot(m.pages, true).EnableMouse(true).Run()
}

// State возвращает текущие папки и флаги
func (m *Manager) State() State {
	return m.state
}

// createUI создает пользовательский интерфейс
func (m *Manager) createUI() {
	inputBrowse := tview.NewButton("Browse...").SetSelectedFunc(func() {
		m.showBrowser(m.state.InputDirectory, m.chooseInput)
	})
	outputBrowse := tview.NewButton("Browse...").SetSelectedFunc(func() {
		m.showBrowser(m.state.OutputDirectory, func(dir string) {
			m.outputField.SetText(dir)
			m.state.OutputDirectory = dir
		})
	})

	m.inputField = tview.NewInputField().
		SetLabel("Input folder:  ").
		SetText(m.state.InputDirectory).
		SetChangedFunc(func(text string) {
			m.state.InputDirectory = text
		}).
		SetDoneFunc(func(key tcell.Key) {
			if key == tcell.KeyEnter {
				m.refresh()
			}
		})
	// Переход фокуса с поля тоже запускает сканирование измененной папки
	m.inputField.SetBlurFunc(m.commitInput)

	m.outputField = tview.NewInputField().
		SetLabel("Output folder: ").
		SetText(m.state.OutputDirectory).
		SetChangedFunc(func(text string) {
			m.state.OutputDirectory = text
		})

	m.subdirsBox = tview.NewCheckbox().
		SetLabel("Also edit files in subfolders ").
		SetChecked(m.state.IncludeSubdirectories).
		SetChangedFunc(func(checked bool) {
			m.state.IncludeSubdirectories = checked
			m.refresh()
		})

	m.lowercaseBox = tview.NewCheckbox().
		SetLabel("Turn all files into lowercase ").
		SetChecked(m.state.Lowercase).
		SetChangedFunc(func(checked bool) {
			m.state.Lowercase = checked
		})

	inputRow := tview.NewFlex().
		AddItem(m.inputField, 0, 1, true).
		AddItem(inputBrowse, 11, 0, false).
		AddItem(nil, 2, 0, false).
		AddItem(m.subdirsBox, 34, 0, false)
	outputRow := tview.NewFlex().
		AddItem(m.outputField, 0, 1, false).
		AddItem(outputBrowse, 11, 0, false).
		AddItem(nil, 2, 0, false).
		AddItem(m.lowercaseBox, 34, 0, false)

	folders := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(inputRow, 1, 0, true).
		AddItem(nil, 1, 0, false).
		AddItem(outputRow, 1, 0, false)
	folders.SetBorder(true).SetTitle("Folders")

	m.createTable()

	review := tview.NewFlex().AddItem(m.table, 0, 2, false)
	if m.preview.Enabled {
		m.previewView = tview.NewImage().SetImage(blankImage())
		m.previewView.SetBorder(true).SetTitle("Preview")
		review.AddItem(m.previewView, 0, 1, false)
	}

	buttons := tview.NewFlex()
	var buttonItems []tview.Primitive
	for _, b := range []struct {
		label  string
		action func()
	}{
		{"Refresh", m.refresh},
		{"Add Scales", m.runBatch},
		{"Select All", func() { m.setAllEnabled(true) }},
		{"Select None", func() { m.setAllEnabled(false) }},
		{"Copy settings to other files", m.copySettings},
		{"Quit", m.Stop},
	} {
		button := tview.NewButton(b.label).SetSelectedFunc(b.action)
		buttons.AddItem(button, len(b.label)+4, 0, false).AddItem(nil, 1, 0, false)
		buttonItems = append(buttonItems, button)
	}

	m.logView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetMaxLines(MaxLogBufferSize)
	m.logView.SetBorder(true).SetTitle("Log")

	m.statusBar = tview.NewTextView().SetDynamicColors(true)

	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(folders, 5, 0, true).
		AddItem(review, 0, 1, false).
		AddItem(buttons, 1, 0, false).
		AddItem(m.logView, LogViewHeight, 0, false).
		AddItem(m.statusBar, 1, 0, false)

	m.focusables = []tview.Primitive{
		m.inputField, inputBrowse, m.subdirsBox,
		m.outputField, outputBrowse, m.lowercaseBox,
		m.table,
	}
	m.focusables = append(m.focusables, buttonItems...)

	m.pages.AddPage(pageMain, layout, true, true)
}

// setupKeyBindings настраивает горячие клавиши
func (m *Manager) setupKeyBindings() {
	m.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		// В модальных окнах клавиши обрабатывает само окно
		if name, _ := m.pages.GetFrontPage(); name != pageMain {
			return event
		}

		switch event.Key() {
		case tcell.KeyTab:
			m.moveFocus(1)
			return nil
		case tcell.KeyBacktab:
			m.moveFocus(-1)
			return nil
		case tcell.KeyF5:
			m.refresh()
			return nil
		}
		return event
	})
}

// moveFocus переводит фокус на следующий (step=1) или предыдущий (step=-1) элемент
func (m *Manager) moveFocus(step int) {
	current := m.app.GetFocus()
	index := 0
	for i, p := range m.focusables {
		if p == current {
			index = (i + step + len(m.focusables)) % len(m.focusables)
			break
		}
	}
	m.app.SetFocus(m.focusables[index])
}

// commitInput пересканирует папку, если текст поля изменился.
// Вызывается при потере фокуса, поэтому не открывает модальные окна.
func (m *Manager) commitInput() {
	if m.state.InputDirectory == m.scannedInput {
		return
	}
	m.scan()
}

// chooseInput применяет папку из диалога выбора.
// Выходная папка становится той же, ее можно сменить отдельно.
func (m *Manager) chooseInput(dir string) {
	m.inputField.SetText(dir)
	m.outputField.SetText(dir)
	m.state.InputDirectory = dir
	m.state.OutputDirectory = dir
	m.refresh()
}

// refresh пересканирует входную папку и сообщает об ошибке в окне
func (m *Manager) refresh() {
	if err := m.scan(); err != nil {
		m.showMessage(fmt.Sprintf("Cannot read %s:\n%v", m.state.InputDirectory, err))
	}
}

func (m *Manager) scan() error {
	if m.controller == nil {
		return nil
	}
	m.scannedInput = m.state.InputDirectory
	err := m.controller.Refresh(m.state)
	m.refreshTable()
	if err != nil {
		m.setStatus(fmt.Sprintf("[red]Ошибка сканирования:[white] %v", err))
		return err
	}
	m.setStatus(fmt.Sprintf("Найдено изображений: [cyan]%d[white]", m.table.GetRowCount()-1))
	return nil
}

// runBatch выполняет пакетную обработку в потоке UI и показывает итог
func (m *Manager) runBatch() {
	if m.controller == nil {
		return
	}
	result, err := m.controller.RunBatch(context.Background(), m.state)
	if err != nil {
		m.showMessage(fmt.Sprintf("Processing stopped: %v", err))
		return
	}
	m.showMessage(result.Summary())
}

func (m *Manager) setAllEnabled(value bool) {
	if m.controller == nil {
		return
	}
	m.controller.SetAllEnabled(value)
	m.refreshTable()
}

// copySettings копирует настройки выбранной строки во все строки
func (m *Manager) copySettings() {
	if m.controller == nil {
		return
	}
	index := m.selectedIndex()
	if index < 0 {
		m.showMessage("Select a file in the table first.")
		return
	}
	if err := m.controller.CopySettingsToAll(index); err != nil {
		m.showMessage(err.Error())
		return
	}
	m.refreshTable()
}

// Stop закрывает приложение; можно вызывать из другой горутины
func (m *Manager) Stop() {
	m.Cleanup()
	m.app.Stop()
}

// SendStatusUpdate показывает ход обработки в строке состояния.
// Обработка идет в потоке UI, поэтому текст меняется напрямую.
func (m *Manager) SendStatusUpdate(status entities.BatchStatus) {
	if m.statusBar == nil {
		return
	}
	m.setStatus(formatStatus(status))
}

func (m *Manager) setStatus(text string) {
	if m.statusBar != nil {
		m.statusBar.SetText(text)
	}
}

// formatStatus строка состояния пакетной обработки
func formatStatus(status entities.BatchStatus) string {
	text := fmt.Sprintf("[yellow]%s[white] %s [cyan]%.0f%%[white] %d/%d",
		status.Phase.String(),
		createProgressBar(status.Progress, ProgressBarWidth),
		status.Progress,
		status.HandledFiles,
		status.TotalFiles,
	)
	if status.CurrentFile != "" && !status.IsComplete {
		text += " " + truncateFileName(filepath.Base(status.CurrentFile), MaxFileNameLength, MaxFileNameDisplay)
	}
	if status.FailedFiles > 0 {
		text += fmt.Sprintf(" [red]ошибок: %d[white]", status.FailedFiles)
	}
	if status.SkippedFiles > 0 {
		text += fmt.Sprintf(" [yellow]пропущено: %d[white]", status.SkippedFiles)
	}
	return text
}

// truncateFileName корректно усекает имя файла с учетом UTF-8
func truncateFileName(fileName string, maxLength, truncateAt int) string {
	runes := []rune(fileName)
	if len(runes) <= maxLength {
		return fileName
	}
	return string(runes[:truncateAt]) + "..."
}

// createProgressBar создает цветной прогресс-бар
func createProgressBar(progress float64, width int) string {
	if progress < 0 {
		progress = 0
	} else if progress > 100 {
		progress = 100
	}

	filled := int(math.Round(progress * float64(width) / 100))

	var color string
	switch {
	case progress < 25:
		color = "red"
	case progress < 50:
		color = "yellow"
	case progress < 75:
		color = "blue"
	default:
		color = "green"
	}

	return fmt.Sprintf("[%s]%s[gray]%s[white]", color, strings.Repeat("█", filled), strings.Repeat("░", width-filled))
}

// showMessage показывает модальное окно с кнопкой OK
func (m *Manager) showMessage(text string) {
	modal := tview.NewModal().
		SetText(text).
		AddButtons([]string{"OK"}).
		SetDoneFunc(func(int, string) {
			m.closeModal()
		})
	m.openModal(modal)
}

// openModal показывает окно поверх основного экрана
func (m *Manager) openModal(p tview.Primitive) {
	if name, _ := m.pages.GetFrontPage(); name == pageMain {
		m.lastFocus = m.app.GetFocus()
	}
	m.pages.RemovePage(pageModal)
	m.pages.AddPage(pageModal, p, true, true)
	m.app.SetFocus(p)
}

func (m *Manager) closeModal() {
	m.pages.RemovePage(pageModal)
	if m.lastFocus != nil {
		m.app.SetFocus(m.lastFocus)
	} else {
		m.app.SetFocus(m.table)
	}
}

// centered размещает окно заданного размера по центру экрана
func centered(p tview.Primitive, width, height int) tview.Primitive {
	return tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(p, height, 0, true).
			AddItem(nil, 0, 1, false), width, 0, true).
		AddItem(nil, 0, 1, false)
}

// AddLog добавляет запись в лог через канал (неблокирующе)
func (m *Manager) AddLog(level, message string) {
	select {
	case m.logChan <- formatLogLine(level, message):
	default:
		// Канал переполнен, запись теряется
	}
}

// formatLogLine раскрашивает строку журнала по уровню
func formatLogLine(level, message string) string {
	var color string
	switch strings.ToLower(level) {
	case "error":
		color = "red"
	case "warning":
		color = "yellow"
	case "success":
		color = "green"
	case "debug":
		color = "gray"
	default:
		color = "white"
	}
	return fmt.Sprintf("[%s]%s:[white] %s", color, strings.ToUpper(level), tview.Escape(message))
}

// logProcessor обрабатывает логи в отдельной горутине с батчингом
func (m *Manager) logProcessor() {
	ticker := time.NewTicker(LogFlushInterval)
	defer ticker.Stop()

	batch := make([]string, 0, 50)

	for {
		select {
		case logLine := <-m.logChan:
			batch = append(batch, logLine)
			if len(batch) >= 20 {
				m.flushLogBatch(batch)
				batch = make([]string, 0, 50)
			}

		case <-ticker.C:
			if len(batch) > 0 {
				m.flushLogBatch(batch)
				batch = make([]string, 0, 50)
			}

		case <-m.logDone:
			return
		}
	}
}

// flushLogBatch сбрасывает батч логов в UI
func (m *Manager) flushLogBatch(batch []string) {
	m.statusMutex.Lock()
	m.logBuffer = append(m.logBuffer, batch...)
	if len(m.logBuffer) > MaxLogBufferSize {
		m.logBuffer = m.logBuffer[len(m.logBuffer)-MaxLogBufferSize:]
	}
	logText := strings.Join(m.logBuffer, "\n")
	m.statusMutex.Unlock()

	if m.logView != nil {
		m.app.QueueUpdateDraw(func() {
			m.logView.SetText(logText)
			m.logView.ScrollToEnd()
		})
	}
}

// Cleanup освобождает ресурсы менеджера (идемпотентный)
func (m *Manager) Cleanup() {
	m.logMutex.Lock()
	defer m.logMutex.Unlock()

	select {
	case <-m.logDone:
		return
	default:
		close(m.logDone)
	}
}
