// Copyright (c) 2023, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stimset

import (
	"fmt"

	"github.com/c2h5oh/datasize"
	"github.com/emer/etable/etable"
	"github.com/emer/etable/etensor"
	"github.com/emer/stims/stim"
	"github.com/goki/gi/gi"
)

// ConfigTable configures dt with the bank schema: Name, Class,
// Subclass string columns and an Image tensor column at the sheet
// pixel size, with one row per stimulus.
func (bk *Bank) ConfigTable(dt *etable.Table) {
	sz := bk.Sheet.PixSize()
	dt.SetMetaData("name", bk.Nm)
	dt.SetMetaData("desc", "visual test-pattern stimulus bank")
	dt.SetMetaData("read-only", "true")
	sch := etable.Schema{
		{"Name", etensor.STRING, nil, nil},
		{"Class", etensor.STRING, nil, nil},
		{"Subclass", etensor.STRING, nil, nil},
		{"Image", etensor.FLOAT32, []int{sz.Y, sz.X}, []string{"Y", "X"}},
	}
	dt.SetFromSchema(sch, len(bk.Stims))
}

// Table renders every stimulus in the bank into a new etable.Table.
func (bk *Bank) Table() (*etable.Table, error) {
	if err := bk.Validate(); err != nil {
		return nil, err
	}
	dt := &etable.Table{}
	bk.ConfigTable(dt)
	tsr := &etensor.Float32{}
	for i, st := range bk.Stims {
		if err := stim.Render(st.Pat, bk.Sheet, tsr); err != nil {
			return nil, err
		}
		dt.SetCellString("Name", i, st.Nm)
		dt.SetCellString("Class", i, st.Class.String())
		dt.SetCellString("Subclass", i, st.Subclass)
		dt.SetCellTensor("Image", i, tsr)
	}
	return dt, nil
}

// SaveCSV renders the bank and saves the table to a tab-separated
// file with headers.
func (bk *Bank) SaveCSV(fname string) error {
	dt, err := bk.Table()
	if err != nil {
		return err
	}
	return dt.SaveCSV(gi.FileName(fname), etable.Tab, etable.Headers)
}

// OpenCSV opens a previously saved tab-separated bank table, e.g., to
// reuse rendered images without re-rendering.
func OpenCSV(fname string) (*etable.Table, error) {
	dt := &etable.Table{}
	err := dt.OpenCSV(gi.FileName(fname), etable.Tab)
	if err != nil {
		return nil, err
	}
	return dt, nil
}

// SizeReport returns a human-readable report of the rendered memory
// size of the bank.
func (bk *Bank) SizeReport() string {
	sz := bk.Sheet.PixSize()
	n := len(bk.Stims)
	mem := n * sz.X * sz.Y * 4
	return fmt.Sprintf("%s:\t Stims: %d\t Image: %d x %d px\t Mem: %v",
		bk.Nm, n, sz.X, sz.Y, (datasize.ByteSize)(mem).HumanReadable())
}
