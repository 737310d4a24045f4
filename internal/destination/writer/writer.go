// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package writer

import (
	"context"
	"io"
	"sync"

	"github.com/kkokgo/masterdb/internal/destination"
	"github.com/kkokgo/masterdb/internal/table"
)

var _ destination.Sender = &writerDestination{}

type writerDestination struct {
	writer io.Writer

	lock sync.Mutex
}

func NewDestination(w io.Writer) destination.Sender {
	return &writerDestination{
		writer: w,
	}
}

func (d *writerDestination) Send(_ context.Context, data *table.Table) error {
	d.lock.Lock()
	defer d.lock.Unlock()

	return table.Write(d.writer, data)
}
