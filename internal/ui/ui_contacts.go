package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-contacts/internal/config"
)

// listItem addresses one line of the flattened list: a section header or a contact row.
type listItem struct {
	section int
	row     int
	header  bool
}

// flatten lays out a data source as header, rows, header, rows...
func flatten(ds SectionDataSource) []listItem {
	var items []listItem
	for s := 0; s < ds.SectionCount(); s++ {
		items = append(items, listItem{section: s, header: true})
		for r := 0; r < ds.RowCount(s); r++ {
			items = append(items, listItem{section: s, row: r})
		}
	}
	return items
}

// ContactList renders a SectionDataSource as a Fyne list with section headers.
// It holds the currently displayed result; SetSections replaces it wholesale.
type ContactList struct {
	List *widget.List

	data  SectionDataSource
	items []listItem
}

// NewContactList creates an empty list.
func NewContactList() *ContactList {
	l := &ContactList{data: Sections(nil)}

	l.List = widget.NewList(
		func() int {
			return len(l.items)
		},
		func() fyne.CanvasObject {
			return newListCell()
		},
		func(id widget.ListItemID, o fyne.CanvasObject) {
			if id < 0 || id >= len(l.items) {
				return
			}
			cell := o.(*listCell)
			item := l.items[id]
			if item.header {
				cell.showHeader(l.data.SectionTitle(item.section))
				return
			}
			cell.showRow(l.data.Row(item.section, item.row))
		},
	)

	// Rows are not selectable; a tap only flashes the selection.
	l.List.OnSelected = func(id widget.ListItemID) {
		l.List.Unselect(id)
	}

	return l
}

// SetSections swaps in a new result and redraws.
func (l *ContactList) SetSections(ds SectionDataSource) {
	l.data = ds
	l.items = flatten(ds)

	for id, item := range l.items {
		height := float32(config.RowHeight)
		if item.header {
			height = config.SectionHeaderHeight
		}
		l.List.SetItemHeight(id, height)
	}

	l.List.UnselectAll()
	l.List.Refresh()
	l.List.ScrollToTop()
}

// Data returns the result currently displayed.
func (l *ContactList) Data() SectionDataSource {
	return l.data
}

// Len returns the number of lines (headers included) in the list.
func (l *ContactList) Len() int {
	return len(l.items)
}

// listCell is the reusable list line. It shows either a section header or a contact row.
type listCell struct {
	widget.BaseWidget

	header   *widget.Label
	name     *widget.Label
	lastName *widget.Label
	photo    *canvas.Image
	row      *fyne.Container
}

func newListCell() *listCell {
	c := &listCell{
		header:   widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		name:     widget.NewLabel(config.TablePlaceholder),
		lastName: widget.NewLabel(""),
		photo:    canvas.NewImageFromResource(PlaceholderPhoto()),
	}
	c.photo.FillMode = canvas.ImageFillContain
	c.photo.SetMinSize(fyne.NewSize(config.PhotoSize, config.PhotoSize))

	// Name and last name side by side, photo on the trailing edge.
	c.row = container.NewBorder(nil, nil, nil, c.photo, container.NewHBox(c.name, c.lastName))
	c.header.Hide()

	c.ExtendBaseWidget(c)
	return c
}

func (c *listCell) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewStack(c.header, c.row))
}

func (c *listCell) showHeader(title string) {
	c.header.SetText(title)
	c.header.Show()
	c.row.Hide()
}

func (c *listCell) showRow(content RowContent) {
	c.name.SetText(content.Name)
	c.lastName.SetText(content.LastName)
	c.photo.Resource = content.Photo
	c.photo.Refresh()

	c.header.Hide()
	c.row.Show()
}
