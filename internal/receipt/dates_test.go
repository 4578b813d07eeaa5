package receipt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ParsePaymentDate(t *testing.T) {
	testCases := []struct {
		value    string
		wantOK   bool
		wantDate string
	}{
		{value: "05/03/2024, 02:15:30 PM", wantOK: true, wantDate: "2024-03-05T14:15:30"},
		{value: "5/3/2024, 2:15:30 AM", wantOK: true, wantDate: "2024-03-05T02:15:30"},
		// 13 can't be a month, so the second layout wins.
		{value: "12/13/2024, 11:00:00 AM", wantOK: true, wantDate: "2024-12-13T11:00:00"},
		{value: "2024/03/05, 12:00:00 PM", wantOK: true, wantDate: "2024-03-05T12:00:00"},
		{value: "05-03-2024, 12:00:00 AM", wantOK: true, wantDate: "2024-03-05T00:00:00"},
		{value: " 05/03/2024, 02:15:30 pm ", wantOK: true, wantDate: "2024-03-05T14:15:30"},
		{value: "5/3/2024, 2:5:7 PM", wantOK: true, wantDate: "2024-03-05T14:05:07"},
		{value: "45/45/2024, 02:15:30 PM", wantOK: false},
		{value: "13/03/2024, 00:15:30 PM", wantOK: false},
		{value: "13/03/2024, 0:15:30 AM", wantOK: false},
		{value: "13/03/2024, 13:15:30 PM", wantOK: false},
		{value: "05/03/2024 02:15:30", wantOK: false},
		{value: "", wantOK: false},
	}

	for _, tc := range testCases {
		t.Run(tc.value, func(t *testing.T) {
			date, ok := ParsePaymentDate(tc.value)
			assert.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				assert.Equal(t, tc.wantDate, date.Format(ISODateLayout))
			} else {
				assert.True(t, date.IsZero())
			}
		})
	}
}
