package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/shapealbum/internal/album"
	"github.com/san-kum/shapealbum/internal/config"
	"github.com/san-kum/shapealbum/internal/export"
	"github.com/san-kum/shapealbum/internal/loader"
	"github.com/san-kum/shapealbum/internal/tui"
)

var (
	configFile string
	preset     string
	htmlOut    string
	pdfOut     string
	pngOut     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "shapealbum",
		Short: "script-driven shape album with snapshot history",
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")

	renderCmd := &cobra.Command{
		Use:   "render [script]",
		Short: "load a script and export the album",
		Args:  cobra.ExactArgs(1),
		RunE:  renderAlbum,
	}
	renderCmd.Flags().StringVar(&htmlOut, "html", "", "html output path")
	renderCmd.Flags().StringVar(&pdfOut, "pdf", "", "pdf output path")
	renderCmd.Flags().StringVar(&pngOut, "png", "", "png output path (latest snapshot)")

	viewCmd := &cobra.Command{
		Use:   "view [script]",
		Short: "browse snapshots interactively",
		Args:  cobra.ExactArgs(1),
		RunE:  viewAlbum,
	}

	listCmd := &cobra.Command{
		Use:   "list [script]",
		Short: "list snapshots",
		Args:  cobra.ExactArgs(1),
		RunE:  listSnapshots,
	}

	statsCmd := &cobra.Command{
		Use:   "stats [script]",
		Short: "plot shape count per snapshot",
		Args:  cobra.ExactArgs(1),
		RunE:  statsAlbum,
	}

	rootCmd.AddCommand(renderCmd, viewCmd, listCmd, statsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadAlbum(script string) (*album.Album, *config.Config, error) {
	cfg := config.DefaultConfig()
	switch {
	case configFile != "":
		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load config: %w", err)
		}
	case preset != "":
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	a := album.New()
	res, err := loader.LoadFile(script, a)
	if err != nil {
		return nil, nil, err
	}
	if res.Skipped > 0 {
		fmt.Fprintf(os.Stderr, "skipped %d malformed line(s) in %s\n", res.Skipped, script)
	}
	return a, cfg, nil
}

func renderAlbum(cmd *cobra.Command, args []string) error {
	a, cfg, err := loadAlbum(args[0])
	if err != nil {
		return err
	}
	snaps := a.Snapshots()
	if len(snaps) == 0 {
		return fmt.Errorf("script produced no snapshots")
	}

	htmlPath := htmlOut
	if htmlPath == "" {
		htmlPath = cfg.Output.HTML
	}
	if err := export.WriteHTMLFile(htmlPath, snaps, cfg); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d snapshots)\n", htmlPath, len(snaps))

	pdfPath := pdfOut
	if pdfPath == "" {
		pdfPath = cfg.Output.PDF
	}
	if pdfPath != "" {
		if err := export.WritePDFFile(pdfPath, snaps); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", pdfPath)
	}

	pngPath := pngOut
	if pngPath == "" {
		pngPath = cfg.Output.PNG
	}
	if pngPath != "" {
		if err := export.WritePNGFile(pngPath, snaps[len(snaps)-1], cfg); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", pngPath)
	}

	return nil
}

func viewAlbum(cmd *cobra.Command, args []string) error {
	a, _, err := loadAlbum(args[0])
	if err != nil {
		return err
	}
	return tui.Run(a)
}

func listSnapshots(cmd *cobra.Command, args []string) error {
	a, _, err := loadAlbum(args[0])
	if err != nil {
		return err
	}

	snaps := a.Snapshots()
	if len(snaps) == 0 {
		fmt.Println("no snapshots found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tID\tTIMESTAMP\tSHAPES\tDESCRIPTION")
	for i, snap := range snaps {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\n",
			i+1,
			snap.ID(),
			snap.Timestamp().Format("2006-01-02 15:04:05"),
			len(snap.Shapes()),
			snap.Description(),
		)
	}
	return w.Flush()
}

func statsAlbum(cmd *cobra.Command, args []string) error {
	a, _, err := loadAlbum(args[0])
	if err != nil {
		return err
	}

	snaps := a.Snapshots()
	if len(snaps) == 0 {
		return fmt.Errorf("no data to plot")
	}

	data := make([]float64, len(snaps))
	for i, snap := range snaps {
		data[i] = float64(len(snap.Shapes()))
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("shapes per snapshot"),
	)
	fmt.Println(graph)
	return nil
}
