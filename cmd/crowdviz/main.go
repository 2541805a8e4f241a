package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/crowdviz/internal/config"
	"github.com/san-kum/crowdviz/internal/gradient"
	"github.com/san-kum/crowdviz/internal/replay"
	"github.com/san-kum/crowdviz/internal/runio"
	"github.com/san-kum/crowdviz/internal/viz"
)

var (
	configFile  string
	queryTime   float64
	quantity    string
	agentIdx    int
	samples     int
	legendWidth int
	frameRate   int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "crowdviz",
		Short: "crowd simulation run inspector",
		Long:  "Query, plot and replay recorded crowd simulation runs.",
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "gradient/view config file")

	infoCmd := &cobra.Command{
		Use:   "info <run.json>",
		Short: "describe a recorded run",
		Args:  cobra.ExactArgs(1),
		RunE:  runInfo,
	}

	frameCmd := &cobra.Command{
		Use:   "frame <run.json>",
		Short: "query all agents at one instant",
		Args:  cobra.ExactArgs(1),
		RunE:  runFrame,
	}
	frameCmd.Flags().Float64Var(&queryTime, "time", 0, "query time")
	frameCmd.Flags().StringVar(&quantity, "quantity", "none", "quantity to color by")

	plotCmd := &cobra.Command{
		Use:   "plot <run.json>",
		Short: "plot one agent's interpolated series",
		Args:  cobra.ExactArgs(1),
		RunE:  runPlot,
	}
	plotCmd.Flags().StringVar(&quantity, "quantity", "pressure", "pressure or speed")
	plotCmd.Flags().IntVar(&agentIdx, "agent", 0, "agent index")
	plotCmd.Flags().IntVar(&samples, "samples", 200, "sample count across the run")

	legendCmd := &cobra.Command{
		Use:   "legend",
		Short: "render the colorbar for a quantity",
		RunE:  runLegend,
	}
	legendCmd.Flags().StringVar(&quantity, "quantity", "pressure", "quantity")
	legendCmd.Flags().IntVar(&legendWidth, "width", config.DefaultLegendWidth, "bar width in cells")

	playCmd := &cobra.Command{
		Use:   "play <run.json>",
		Short: "replay a run in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  runPlay,
	}
	playCmd.Flags().StringVar(&quantity, "quantity", "none", "quantity to color by")
	playCmd.Flags().IntVar(&frameRate, "fps", config.DefaultFrameRate, "playback frame rate")

	initCmd := &cobra.Command{
		Use:   "init <config.yaml>",
		Short: "write the default config",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return config.Save(args[0], config.DefaultConfig())
		},
	}

	rootCmd.AddCommand(infoCmd, frameCmd, plotCmd, legendCmd, playCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	if configFile == "" {
		return config.DefaultConfig(), nil
	}
	return config.Load(configFile)
}

func runInfo(cmd *cobra.Command, args []string) error {
	st, rf, err := runio.Load(args[0])
	if err != nil {
		return err
	}

	t0, t1 := st.TimeSpan()
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "model\t%s\n", rf.Model)
	fmt.Fprintf(w, "agents\t%d\n", st.AgentCount())
	fmt.Fprintf(w, "steps\t%d\n", st.StepCount())
	fmt.Fprintf(w, "time span\t[%g, %g]\n", t0, t1)
	fmt.Fprintf(w, "world\t%+v\n", rf.World)

	series := []struct {
		name    string
		present bool
	}{
		{"velocities", st.HasVelocities()},
		{"accelerations", st.HasAccelerations()},
		{"directions", st.HasDirections()},
		{"pressure", st.HasPressure()},
		{"adjacency", st.HasAdjacency()},
		{"information", st.HasInformation()},
	}
	var present, absent []string
	for _, s := range series {
		if s.present {
			present = append(present, s.name)
		} else {
			absent = append(absent, s.name)
		}
	}
	fmt.Fprintf(w, "recorded\t%s\n", strings.Join(present, ", "))
	fmt.Fprintf(w, "missing\t%s\n", strings.Join(absent, ", "))
	return w.Flush()
}

func runFrame(cmd *cobra.Command, args []string) error {
	st, _, err := runio.Load(args[0])
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	mapper, err := cfg.Mapper()
	if err != nil {
		return err
	}
	q := gradient.Quantity(quantity)

	pos, err := st.PositionsAt(queryTime)
	if err != nil {
		return err
	}
	values, err := replay.ValuesAt(st, q, queryTime)
	if err != nil {
		return err
	}
	colors, err := mapper.ColorsFor(q, values)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "agent\tx\ty\t%s\tcolor\n", q)
	for i, p := range pos {
		fmt.Fprintf(w, "%d\t%.4f\t%.4f\t%.4f\t%s\n", i, p.X, p.Y, values[i], colors[i].Hex())
	}
	return w.Flush()
}

func runPlot(cmd *cobra.Command, args []string) error {
	st, _, err := runio.Load(args[0])
	if err != nil {
		return err
	}
	if agentIdx < 0 || agentIdx >= st.AgentCount() {
		return fmt.Errorf("agent %d out of range [0, %d)", agentIdx, st.AgentCount())
	}
	if samples < 2 {
		samples = 2
	}

	q := gradient.Quantity(quantity)
	t0, t1 := st.TimeSpan()
	data := make([]float64, samples)
	for i := range data {
		t := t0 + (t1-t0)*float64(i)/float64(samples-1)
		values, err := replay.ValuesAt(st, q, t)
		if err != nil {
			return err
		}
		data[i] = values[agentIdx]
	}

	fmt.Println(viz.TitleStyle.Render(fmt.Sprintf("%s · agent %d · t ∈ [%g, %g]", q, agentIdx, t0, t1)))
	fmt.Println(asciigraph.Plot(data, asciigraph.Height(15), asciigraph.Width(70)))
	return nil
}

func runLegend(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	mapper, err := cfg.Mapper()
	if err != nil {
		return err
	}

	legend, err := viz.Legend(mapper, gradient.Quantity(quantity), legendWidth)
	if err != nil {
		return err
	}
	fmt.Println(legend)
	return nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	st, rf, err := runio.Load(args[0])
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	mapper, err := cfg.Mapper()
	if err != nil {
		return err
	}

	// The run's own world box beats the configured default view.
	view := cfg.View
	if rf.World.Width > 0 && rf.World.Height > 0 {
		view = rf.World
	}

	player, err := replay.New(st, mapper, gradient.Quantity(quantity), view, frameRate)
	if err != nil {
		return err
	}
	return replay.Run(player)
}
