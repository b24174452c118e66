package crondst_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/gorhill/cronexpr"
	"github.com/reugn/go-crondst/crondst"
	"github.com/robfig/cron/v3"
)

// Without zone transitions the trigger sequence must agree with other cron
// implementations on the syntax they share.
var oracleExpressions = []string{
	"*/5 * * * *",
	"0 12 * * 1-5",
	"15 3 1,15 * *",
	"0 0 13 * 5",
	"30 6 * 1,7 0",
	"0 9-17/2 * * *",
	"7 */3 10-20 * *",
	"45 23 31 * *",
}

func TestAgainstCronexpr(t *testing.T) {
	t.Parallel()
	start := utc(2023, time.January, 1, 0, 0)

	for _, expression := range oracleExpressions {
		t.Run(expression, func(t *testing.T) {
			oracle := cronexpr.MustParse(expression)
			expected := oracle.NextN(start, 200)
			got := crondst.MustParse(expression).Iter(start).Take(200)
			if diff := cmp.Diff(expected, got); diff != "" {
				t.Errorf("mismatch (-cronexpr +crondst):\n%s", diff)
			}
		})
	}
}

func TestAgainstRobfigCron(t *testing.T) {
	t.Parallel()
	start := utc(2023, time.January, 1, 0, 0)

	for _, expression := range oracleExpressions {
		t.Run(expression, func(t *testing.T) {
			oracle, err := cron.ParseStandard(expression)
			if err != nil {
				t.Fatal(err)
			}
			it := crondst.MustParse(expression).Iter(start)
			prev := start
			for i := 0; i < 200; i++ {
				expected := oracle.Next(prev)
				got, ok := it.Next()
				if !ok || !got.Equal(expected) {
					t.Fatalf("step %d: robfig %v, crondst %v", i, expected, got)
				}
				prev = expected
			}
		})
	}
}
