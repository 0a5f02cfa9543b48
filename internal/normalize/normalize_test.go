package normalize

import "testing"

func TestTime(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "morning 12h", raw: "8:30 AM", want: "08:30"},
		{name: "noon stays noon", raw: "12:00 PM", want: "12:00"},
		{name: "midnight wraps to zero", raw: "12:00 AM", want: "00:00"},
		{name: "afternoon adds twelve", raw: "5:30 PM", want: "17:30"},
		{name: "lowercase marker", raw: "5:30 pm", want: "17:30"},
		{name: "marker without space", raw: "7:45AM", want: "07:45"},
		{name: "already 24h unchanged", raw: "17:30", want: "17:30"},
		{name: "24h single digit hour padded", raw: "8:30", want: "08:30"},
		{name: "garbage passes through", raw: "around eightish", want: "around eightish"},
		{name: "empty passes through", raw: "", want: ""},
		{name: "hour out of range passes through", raw: "13:00 PM", want: "13:00 PM"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Time(tt.raw); got != tt.want {
				t.Errorf("Time(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestTimeIdempotent(t *testing.T) {
	inputs := []string{"8:30 AM", "12:00 PM", "12:00 AM", "5:30 PM", "17:30", "00:00", "noise"}
	for _, raw := range inputs {
		once := Time(raw)
		if twice := Time(once); twice != once {
			t.Errorf("Time not idempotent for %q: first %q, second %q", raw, once, twice)
		}
	}
}

func TestDate(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "slash separated", raw: "05/15/2023", want: "2023-05-15"},
		{name: "dash separated", raw: "05-15-2023", want: "2023-05-15"},
		{name: "single digit month and day", raw: "5/3/2023", want: "2023-05-03"},
		{name: "already ISO unchanged", raw: "2023-05-15", want: "2023-05-15"},
		{name: "month out of range passes through", raw: "15/05/2023", want: "15/05/2023"},
		{name: "garbage passes through", raw: "May fifteenth", want: "May fifteenth"},
		{name: "empty passes through", raw: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Date(tt.raw); got != tt.want {
				t.Errorf("Date(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestDateIdempotent(t *testing.T) {
	inputs := []string{"05/15/2023", "2023-05-15", "12-31-1999", "noise"}
	for _, raw := range inputs {
		once := Date(raw)
		if twice := Date(once); twice != once {
			t.Errorf("Date not idempotent for %q: first %q, second %q", raw, once, twice)
		}
	}
}
