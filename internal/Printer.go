/*
Copyright 2011-2026 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package internal

import (
	"bufio"
	"io"
	"sync"
)

// Printer is a verbosity-gated line logger: messages are only emitted
// when the caller passes a true printFlag, so call sites can decide
// per-message whether the current verbosity level warrants output
// without threading a level value through every print call.
type Printer struct {
	writer *bufio.Writer
	mutex  sync.Mutex
}

// NewPrinter creates a Printer writing to the given sink (typically
// os.Stdout or os.Stderr).
func NewPrinter(w io.Writer) *Printer {
	this := &Printer{}
	this.writer = bufio.NewWriter(w)
	return this
}

// Println writes msg followed by a newline and flushes immediately, if
// and only if printFlag is true.
func (this *Printer) Println(msg string, printFlag bool) {
	if !printFlag {
		return
	}

	this.mutex.Lock()
	defer this.mutex.Unlock()
	this.writer.WriteString(msg)
	this.writer.WriteByte('\n')
	this.writer.Flush()
}
