package main

import (
	"context"
	"fmt"

	"github.com/trezcool/horario/core"
	"github.com/trezcool/horario/core/grade"
	"github.com/trezcool/horario/core/schedule"
)

func boolPtr(b bool) *bool { return &b }

// seed inserts a demo schedule and its grades. The biweekly class starts on the Monday of the current week.
func (cli *commandLine) seed() error {
	ctx := context.Background()
	today := cli.scheduleSvc.Today()
	monday := today.AddDays(-core.MondayIndex(core.Weekday(today)))

	entries := []schedule.NewEntry{
		{DayOfWeek: schedule.Monday, Subject: "Cálculo Diferencial", Group: "G1", Modality: schedule.ModalityInPerson, Teacher: "Marta Rojas"},
		{DayOfWeek: schedule.Wednesday, Subject: "Cálculo Diferencial", Group: "G1", Modality: schedule.ModalityInPerson, Teacher: "Marta Rojas"},
		{DayOfWeek: schedule.Tuesday, Subject: "Programación", Group: "G3", Modality: schedule.ModalityVirtual, Teacher: "Andrés Gómez"},
		{DayOfWeek: schedule.Thursday, Subject: "Física I", Modality: schedule.ModalityInPerson},
		{
			DayOfWeek: schedule.Monday,
			Subject:   "Laboratorio de Física",
			Modality:  schedule.ModalityBiweekly,
			Biweekly:  boolPtr(true),
			StartDate: monday.String(),
		},
		{DayOfWeek: schedule.Saturday, Subject: "Inglés", Modality: schedule.ModalityVirtual},
	}
	for _, ne := range entries {
		if _, err := cli.scheduleSvc.Create(ctx, ne); err != nil {
			return err
		}
	}

	grades := []grade.NewEntry{
		{Subject: "Cálculo Diferencial", Grade: core.NewFloat(4.2), Percentage: core.NewFloat(30), Description: "Parcial 1"},
		{Subject: "Cálculo Diferencial", Grade: core.NewFloat(3.6), Percentage: core.NewFloat(20), Description: "Taller"},
		{Subject: "Programación", Grade: core.NewFloat(4.8), Percentage: core.NewFloat(25), Description: "Proyecto"},
		{Subject: "Física I", Grade: core.NewFloat(2.9), Percentage: core.NewFloat(30), Description: "Parcial 1"},
	}
	for _, ne := range grades {
		if _, err := cli.gradeSvc.Create(ctx, ne); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(cli.out, "seeded %d schedule entries and %d grades\n", len(entries), len(grades))
	return err
}
