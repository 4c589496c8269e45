package services

import (
	"fmt"
	"io"

	"github.com/vvka-141/ksload/pkg/ksload"
)

// Instructions writes the steps for obtaining the Kickstarter dataset from Kaggle.
// dataDir is the directory the CSV should be extracted into.
func Instructions(w io.Writer, dataDir string) {
	fmt.Fprintln(w, "To download data from Kaggle:")
	fmt.Fprintln(w, "1. Install kaggle: pip install kaggle")
	fmt.Fprintf(w, "2. Set up API credentials from %s\n", ksload.KaggleAccountURL)
	fmt.Fprintf(w, "3. Run: kaggle datasets download -d %s\n", ksload.KaggleDataset)
	fmt.Fprintf(w, "4. Extract the CSV file to the %s/ directory\n", dataDir)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Alternatively, manually download from:")
	fmt.Fprintln(w, ksload.KaggleDatasetURL)
}
