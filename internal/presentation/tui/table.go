package tui

import (
	"fmt"
	"strconv"

	"autoscale/internal/domain/entities"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// createTable создает таблицу просмотра файлов
func (m *Manager) createTable() {
	m.table = tview.NewTable().
		SetBorders(false).
		SetSelectable(true, true).
		SetFixed(1, 0)
	m.table.SetBorder(true).SetTitle("Files (Enter/Space - edit)")

	m.table.SetSelectedFunc(func(row, column int) {
		m.editCell(row-1, column)
	})
	m.table.SetSelectionChangedFunc(func(row, column int) {
		m.updatePreview(row - 1)
	})
	m.table.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyRune && event.Rune() == ' ' {
			row, column := m.table.GetSelection()
			m.editCell(row-1, column)
			return nil
		}
		return event
	})
}

// refreshTable перерисовывает таблицу по записям реестра, сохраняя выделение
func (m *Manager) refreshTable() {
	row, column := m.table.GetSelection()

	m.table.Clear()
	for col, header := range entities.ColumnHeaders {
		m.table.SetCell(0, col, tview.NewTableCell(header).
			SetTextColor(tcell.ColorYellow).
			SetSelectable(false).
			SetExpansion(headerExpansion(col)))
	}

	var files []*entities.FileSetting
	if m.controller != nil {
		files = m.controller.Files()
	}
	for i, fs := range files {
		for col := range entities.ColumnHeaders {
			cell := tview.NewTableCell(tview.Escape(cellText(fs, col)))
			if !cellEditable(fs, col) {
				cell.SetTextColor(tcell.ColorGray)
			}
			m.table.SetCell(i+1, col, cell)
		}
	}

	if len(files) == 0 {
		m.updatePreview(-1)
		return
	}
	if row < 1 || row > len(files) {
		row = 1
	}
	if column < 0 {
		column = entities.ColumnEnabled
	}
	m.table.Select(row, column)
}

func headerExpansion(column int) int {
	if column == entities.ColumnFile {
		return 3
	}
	return 1
}

// cellText текст ячейки таблицы для записи
func cellText(fs *entities.FileSetting, column int) string {
	switch column {
	case entities.ColumnEnabled:
		if fs.Enabled {
			return "[x]"
		}
		return "[ ]"
	case entities.ColumnFile:
		return truncateFileName(fs.Name(), MaxFileNameLength, MaxFileNameDisplay)
	case entities.ColumnZoom:
		return fs.Zoom.Label()
	case entities.ColumnPixelPerUnit:
		return entities.FormatNumber(fs.PixelPerUnit)
	case entities.ColumnBarWidth:
		return entities.FormatNumber(fs.BarWidth)
	case entities.ColumnUnit:
		return fs.Unit
	case entities.ColumnColor:
		return fs.Color
	default:
		return ""
	}
}

// cellEditable доступна ли ячейка для редактирования
func cellEditable(fs *entities.FileSetting, column int) bool {
	switch column {
	case entities.ColumnFile:
		return false
	case entities.ColumnPixelPerUnit:
		return fs.PixelPerUnitEditable()
	default:
		return true
	}
}

// selectedIndex индекс записи в выделенной строке или -1
func (m *Manager) selectedIndex() int {
	row, _ := m.table.GetSelection()
	if row < 1 || row >= m.table.GetRowCount() {
		return -1
	}
	return row - 1
}

// editCell открывает редактор для ячейки записи index
func (m *Manager) editCell(index, column int) {
	if m.controller == nil {
		return
	}
	files := m.controller.Files()
	if index < 0 || index >= len(files) {
		return
	}
	fs := files[index]

	field, ok := entities.FieldForColumn(column)
	if !ok {
		return
	}

	switch {
	case field == entities.FieldEnabled:
		m.applyEdit(index, field, strconv.FormatBool(!fs.Enabled))
	case field == entities.FieldZoom:
		m.showZoomEditor(index, fs)
	case !cellEditable(fs, column):
		m.showMessage("Pixel per unit can only be edited when Zoom is Custom.")
	default:
		m.showValueEditor(index, field, entities.ColumnHeaders[column], cellText(fs, column))
	}
}

// applyEdit применяет изменение; при ошибке значение в реестре остается прежним
func (m *Manager) applyEdit(index int, field entities.Field, value string) {
	err := m.controller.ApplyFieldEdit(index, field, value)
	m.refreshTable()
	if err != nil {
		m.showMessage(fmt.Sprintf("Invalid value: %v", err))
	}
}

// showZoomEditor окно выбора увеличения
func (m *Manager) showZoomEditor(index int, fs *entities.FileSetting) {
	labels := make([]string, len(entities.ZoomOptions))
	for i, zoom := range entities.ZoomOptions {
		labels[i] = zoom.Label()
	}

	form := tview.NewForm()
	form.AddDropDown("Zoom", labels, fs.Zoom.Index(), nil).
		AddButton("OK", func() {
			selected, _ := form.GetFormItem(0).(*tview.DropDown).GetCurrentOption()
			if selected < 0 {
				return
			}
			m.closeModal()
			m.applyEdit(index, entities.FieldZoom, string(entities.ZoomOptions[selected]))
		}).
		AddButton("Cancel", m.closeModal).
		SetCancelFunc(m.closeModal)
	form.SetBorder(true).SetTitle(fs.Name())

	m.openModal(centered(form, 44, 9))
}

// showValueEditor окно ввода числа или текста
func (m *Manager) showValueEditor(index int, field entities.Field, title, current string) {
	form := tview.NewForm()
	form.AddInputField(title, current, 20, nil, nil).
		AddButton("OK", func() {
			value := form.GetFormItem(0).(*tview.InputField).GetText()
			m.closeModal()
			m.applyEdit(index, field, value)
		}).
		AddButton("Cancel", m.closeModal).
		SetCancelFunc(m.closeModal)
	form.SetBorder(true).SetTitle(title)

	m.openModal(centered(form, 44, 7))
}
