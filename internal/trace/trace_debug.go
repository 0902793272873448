// Copyright 2026 The LabRAD-Go Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build labraddebug

package trace

import (
	"fmt"
	"os"
	"runtime"

	"github.com/timandy/routine"
)

const enabled = true

// log prints a trace line to stderr, tagged with the calling goroutine id
// so interleaved packet/codec traces from concurrent callers stay
// distinguishable.
func log(operation, format string, args ...any) {
	pc, file, line, _ := runtime.Caller(2)
	fn := runtime.FuncForPC(pc)
	name := "?"
	if fn != nil {
		name = fn.Name()
	}

	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(os.Stderr, "labrad[g%d] %s:%d %s: %s: %s\n",
		routine.Goid(), file, line, name, operation, msg)
}
