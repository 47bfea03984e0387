package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/focusboard/internal/model"
	"github.com/sadopc/focusboard/internal/store"
)

func priorityOptions() []huh.Option[model.Priority] {
	return []huh.Option[model.Priority]{
		huh.NewOption("Low", model.PriorityLow),
		huh.NewOption("Medium", model.PriorityMedium),
		huh.NewOption("High", model.PriorityHigh),
	}
}

type tasksModel struct {
	store  *store.Store
	width  int
	height int

	tasks  []model.Task
	cursor int

	formActive bool
	form       *huh.Form

	// Form field pointers (survive value copies)
	formTitle    *string
	formPriority *model.Priority
}

func newTasksModel(s *store.Store, tasks []model.Task) tasksModel {
	title, priority := "", model.PriorityMedium
	return tasksModel{
		store:        s,
		tasks:        tasks,
		formTitle:    &title,
		formPriority: &priority,
	}
}

func (t *tasksModel) setSize(w, h int) {
	t.width = w
	t.height = h
}

func (t *tasksModel) setTasks(tasks []model.Task) {
	t.tasks = tasks
	if t.cursor >= len(t.tasks) {
		t.cursor = max(0, len(t.tasks)-1)
	}
}

func (t tasksModel) update(msg tea.Msg) (tasksModel, tea.Cmd) {
	if t.formActive && t.form != nil {
		return t.updateForm(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		return t.updateList(msg)
	}
	return t, nil
}

func (t tasksModel) updateList(msg tea.KeyMsg) (tasksModel, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if t.cursor > 0 {
			t.cursor--
		}
	case key.Matches(msg, keys.Down):
		if t.cursor < len(t.tasks)-1 {
			t.cursor++
		}
	case key.Matches(msg, keys.New):
		return t.showNewTaskForm()
	case key.Matches(msg, keys.Complete), key.Matches(msg, keys.Enter), key.Matches(msg, keys.Pause):
		if len(t.tasks) > 0 {
			d := t.store.ToggleTask(t.tasks[t.cursor].ID)
			t.setTasks(d.Tasks)
			return t, dataCmd(d)
		}
	case key.Matches(msg, keys.Delete):
		if len(t.tasks) > 0 {
			d := t.store.DeleteTask(t.tasks[t.cursor].ID)
			t.setTasks(d.Tasks)
			return t, dataCmd(d)
		}
	}
	return t, nil
}

func (t tasksModel) showNewTaskForm() (tasksModel, tea.Cmd) {
	*t.formTitle = ""
	*t.formPriority = model.PriorityMedium

	t.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Task").Placeholder("What needs doing?").Value(t.formTitle),
			huh.NewSelect[model.Priority]().Title("Priority").Options(priorityOptions()...).Value(t.formPriority),
		),
	).WithShowHelp(true).WithShowErrors(true)

	t.formActive = true
	return t, t.form.Init()
}

func (t tasksModel) updateForm(msg tea.Msg) (tasksModel, tea.Cmd) {
	// Check for escape to cancel form
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			t.formActive = false
			t.form = nil
			return t, nil
		}
	}

	form, cmd := t.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		t.form = f
	}

	if t.form.State == huh.StateCompleted {
		t.formActive = false
		t.form = nil
		if strings.TrimSpace(*t.formTitle) == "" {
			return t, nil
		}
		d := t.store.AddTask(*t.formTitle, *t.formPriority)
		t.setTasks(d.Tasks)
		return t, dataCmd(d)
	}

	return t, cmd
}

func renderTaskLine(st styles, task model.Task, selected bool) string {
	check := "[ ]"
	title := st.normalItem.Render(task.Title)
	if task.Completed {
		check = st.success.Render("[✓]")
		title = st.doneItem.Render(task.Title)
	}
	cursor := "  "
	if selected {
		cursor = st.selectedItem.Render("> ")
		if !task.Completed {
			title = st.selectedItem.Render(task.Title)
		}
	}
	badge := st.priority(task.Priority).Render(fmt.Sprintf("%-6s", task.Priority))
	return fmt.Sprintf("%s%s %s %s", cursor, check, badge, title)
}

func (t tasksModel) view(st styles) string {
	w := t.width - 4
	if w < 20 {
		w = 20
	}

	if t.formActive && t.form != nil {
		content := lipgloss.JoinVertical(lipgloss.Left, st.title.Render("New Task"), "", t.form.View())
		return st.activePanel.Width(w).Render(content)
	}

	done, total := model.CountCompleted(t.tasks)
	title := st.title.Render("Tasks") + "  " + st.muted.Render(fmt.Sprintf("%d/%d completed", done, total))

	if len(t.tasks) == 0 {
		content := lipgloss.JoinVertical(lipgloss.Left,
			title,
			"",
			st.muted.Render("No tasks yet. Press n to add one."),
		)
		return st.panel.Width(w).Render(content)
	}

	rows := []string{title, ""}
	for i, task := range t.tasks {
		rows = append(rows, renderTaskLine(st, task, i == t.cursor))
	}

	rows = append(rows, "")
	rows = append(rows, st.muted.Render("  n: new  c/enter: complete  d: delete  ↑/↓: move"))

	return st.panel.Width(w).Render(strings.Join(rows, "\n"))
}
