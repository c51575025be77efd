package compare

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/li1125435097/EassyCode/pkg/timing"
)

// LoopIterations is the fixed bound of the empty timing loop. Other language
// editions use the same constant, so it must not change.
const LoopIterations = 10000000

// loopSink is read after the loop so the compiler cannot delete the loop body.
var loopSink uint64

// Performance times an empty loop of LoopIterations iterations and reports
// the elapsed wall-clock seconds on one line.
func Performance() {
	t := timing.StartTimer()
	var count uint64
	for i := 0; i < LoopIterations; i++ {
		count++
	}
	loopSink = count
	elapsed := t.Elapsed()

	logrus.WithField("component", "compare").
		Debugf("empty loop: %d iterations in %v", LoopIterations, elapsed)
	fmt.Fprintln(output, "Go执行时间：", elapsed.Seconds(), "秒")
}
