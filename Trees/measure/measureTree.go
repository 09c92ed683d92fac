// Command measure inserts the keys 1..N into a BSTree, an AVLTree and a
// SplayTree, once in order and once shuffled, and writes the depth every key
// is found at into data/ordered_depths.csv and data/random_depths.csv.
package main

import (
	"encoding/csv"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/g-m-twostay/depthtrees/Trees"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

// NotFoundDepth is written instead of a depth when a key isn't found. The
// plotting scripts reading the tables expect this value.
const NotFoundDepth = 100

var header = []string{"Value", "BST_Depth", "AVL_Depth", "Splay_Depth"}

var logger = log.New(os.Stderr, "measure: ", log.LstdFlags)

func newTrees() []Trees.DepthTree[int] {
	return []Trees.DepthTree[int]{Trees.NewBST[int, uint32](), Trees.NewAVL[int](), Trees.NewSplay[int]()}
}

// depthRows inserts order into fresh trees, then looks up 1..n in every tree,
// one row per key. bar may be nil.
func depthRows(order []int, n int, bar *progressbar.ProgressBar) [][]string {
	trees := newTrees()
	for _, v := range order {
		for _, t := range trees {
			t.Insert(v)
		}
	}
	rows := make([][]string, 0, n)
	for v := 1; v <= n; v++ {
		row := make([]string, 1, len(trees)+1)
		row[0] = strconv.Itoa(v)
		for _, t := range trees {
			d, found := t.Lookup(v)
			if !found {
				d = NotFoundDepth
			}
			row = append(row, strconv.FormatUint(uint64(d), 10))
		}
		rows = append(rows, row)
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	return rows
}

func writeTable(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := csv.NewWriter(f)
	if err = w.Write(header); err == nil {
		err = w.WriteAll(rows)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

type options struct {
	n        int
	seed     int64
	out      string
	progress bool
}

func measure(o options) error {
	if o.n < 1 {
		return fmt.Errorf("n must be positive, got %d", o.n)
	}
	if err := os.MkdirAll(o.out, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", o.out, err)
	}
	var bar *progressbar.ProgressBar
	if o.progress {
		bar = progressbar.NewOptions(2*o.n,
			progressbar.OptionSetDescription("measuring depths"),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowCount(),
		)
	}

	ordered := make([]int, o.n)
	for i := range ordered {
		ordered[i] = i + 1
	}
	if err := writeTable(filepath.Join(o.out, "ordered_depths.csv"), depthRows(ordered, o.n, bar)); err != nil {
		return err
	}

	random := rand.New(rand.NewSource(o.seed)).Perm(o.n)
	for i := range random {
		random[i]++
	}
	if err := writeTable(filepath.Join(o.out, "random_depths.csv"), depthRows(random, o.n, bar)); err != nil {
		return err
	}
	if bar != nil {
		_ = bar.Finish()
	}
	logger.Printf("wrote depths of %d keys to %s (seed %d)", o.n, o.out, o.seed)
	return nil
}

func newRootCmd() *cobra.Command {
	var o options
	cmd := &cobra.Command{
		Use:   "measure",
		Short: "Measure lookup depths of the BST, AVL and splay trees",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("seed") {
				o.seed = time.Now().UnixNano()
			}
			return measure(o)
		},
	}
	cmd.Flags().IntVarP(&o.n, "n", "n", 100, "number of keys")
	cmd.Flags().Int64Var(&o.seed, "seed", 0, "seed of the shuffled order, random by default")
	cmd.Flags().StringVarP(&o.out, "out", "o", "data", "directory of the csv files")
	cmd.Flags().BoolVar(&o.progress, "progress", false, "show a progress bar")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger.Fatal(err)
	}
}
