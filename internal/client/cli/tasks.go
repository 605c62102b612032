package cli

import (
	"context"
	"os"
)

func (a *App) Greet(ctx context.Context) error {

	msg, err := a.client.Greet(ctx)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	printlnFn(msg)
	return nil
}

func (a *App) List(ctx context.Context) error {

	tasks, err := a.client.ListTasks(ctx)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	if len(tasks) == 0 {
		printlnFn("No tasks")
		return nil
	}

	for _, t := range tasks {
		mark := "[ ]"
		if t.Completed {
			mark = "[x]"
		}
		printlnFn(mark, t.ID, t.Title)
	}
	return nil
}

func (a *App) Add(ctx context.Context) error {

	title, err := GetSimpleText(a.reader, "Enter title", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	description, err := GetSimpleText(a.reader, "Enter description", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	task, err := a.client.AddTask(ctx, title, description)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	printlnFn("Added", task.ID)
	return nil
}

func (a *App) Done(ctx context.Context) error {

	id, err := GetSimpleText(a.reader, "Enter task id", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	task, err := a.client.CompleteTask(ctx, id)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	printlnFn("Completed", task.ID)
	return nil
}

func (a *App) Remove(ctx context.Context) error {

	id, err := GetSimpleText(a.reader, "Enter task id", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	if err := a.client.RemoveTask(ctx, id); err != nil {
		printlnFn(err.Error())
		return err
	}

	printlnFn("Removed", id)
	return nil
}
