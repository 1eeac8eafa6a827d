// Command aerialsim-demo is a reference driver for the litho package:
// it reads a JSON5 configuration naming a mask and an optical setup,
// runs a single aerial-image pass, writes the resist render and
// cross-section plot to PNG, optionally runs a Bossung sweep and
// plots its curves, and optionally shows the results in a Fyne
// window.
package main

import (
	"fmt"
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	aerialsim "github.com/openlitho/aerialsim"
	"github.com/openlitho/aerialsim/render"
)

func main() {
	args := os.Args
	if len(args) < 2 {
		fmt.Println("Wrong number of arguments.\n\tUsage: aerialsim-demo <config-file> [--show]")
		os.Exit(1)
	}
	path := args[1]
	show := len(args) > 2 && args[2] == "--show"

	cfg, err := LoadDemoConfig(path)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	mask, err := BuildMask(cfg)
	if err != nil {
		fmt.Println(err)
		os.Exit(3)
	}

	pipeline := aerialsim.NewPipeline()

	start := time.Now()
	result, err := pipeline.Run(mask, cfg.Params)
	if err != nil {
		fmt.Println(err)
		os.Exit(4)
	}
	fmt.Printf("Aerial image computed in %s (reported %.3f ms)\n", time.Since(start), result.TimeMs)

	resistImg := render.ResistImage(result.Intensity, cfg.View.Threshold)
	resistPath := cfg.OutputPrefix + "_resist.png"
	if err := render.SaveImagePNG(resistPath, resistImg); err != nil {
		fmt.Println(err)
		os.Exit(5)
	}
	fmt.Println("Wrote", resistPath)

	crossSectionImg, err := render.PlotCrossSection(result.Intensity, cfg.View.CrossSectionRow, 1200, 500)
	if err != nil {
		fmt.Println(err)
		os.Exit(6)
	}
	crossSectionPath := cfg.OutputPrefix + "_cross_section.png"
	if err := render.SaveImagePNG(crossSectionPath, crossSectionImg); err != nil {
		fmt.Println(err)
		os.Exit(7)
	}
	fmt.Println("Wrote", crossSectionPath)

	var bossungPath string
	if cfg.RunBossung {
		sweepStart := time.Now()
		bossungResult, err := aerialsim.RunBossungSweep(pipeline, mask, cfg.Params, cfg.Bossung)
		if err != nil {
			fmt.Println(err)
			os.Exit(8)
		}
		fmt.Printf("Bossung sweep: %d pipeline runs in %s (reported %.3f ms)\n",
			bossungResult.PipelineRuns, time.Since(sweepStart), bossungResult.TimeMs)

		bossungImg, err := render.PlotBossungCurves(bossungResult, 1200, 700)
		if err != nil {
			fmt.Println(err)
			os.Exit(9)
		}
		bossungPath = cfg.OutputPrefix + "_bossung.png"
		if err := render.SaveImagePNG(bossungPath, bossungImg); err != nil {
			fmt.Println(err)
			os.Exit(10)
		}
		fmt.Println("Wrote", bossungPath)
	}

	if !show {
		return
	}

	myApp := app.NewWithID("org.openlitho.aerialsim-demo")

	w := myApp.NewWindow("Aerial image — resist render")
	resistCanvasImg := fynecanvas.NewImageFromImage(resistImg)
	resistCanvasImg.FillMode = fynecanvas.ImageFillContain
	resistCanvasImg.SetMinSize(fyne.NewSize(600, 600))
	w.SetContent(container.NewCenter(resistCanvasImg))
	w.Resize(fyne.NewSize(700, 700))
	w.Show()

	w2 := myApp.NewWindow("Cross section")
	crossCanvasImg := fynecanvas.NewImageFromImage(crossSectionImg)
	crossCanvasImg.FillMode = fynecanvas.ImageFillContain
	crossCanvasImg.SetMinSize(fyne.NewSize(1200, 500))
	w2.SetContent(container.NewCenter(crossCanvasImg))
	w2.Resize(fyne.NewSize(950, 550))
	w2.Show()

	if bossungPath != "" {
		w3 := myApp.NewWindow("Bossung plot")
		bossungCanvasImg := fynecanvas.NewImageFromFile(bossungPath)
		bossungCanvasImg.FillMode = fynecanvas.ImageFillContain
		bossungCanvasImg.SetMinSize(fyne.NewSize(1200, 700))
		w3.SetContent(container.NewCenter(bossungCanvasImg))
		w3.Resize(fyne.NewSize(950, 650))
		w3.Show()
	}

	w.ShowAndRun()
}
