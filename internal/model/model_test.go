package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		raw  string
		want int64
		ok   bool
	}{
		{"42", 42, true},
		{"0", 0, true},
		{"", 0, false},
		{"-1", 0, false},
		{"abc", 0, false},
		{"12abc", 0, false},
		{"99999999999999999999", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseID(tt.raw)
		assert.Equal(t, tt.ok, ok, tt.raw)
		assert.Equal(t, tt.want, got, tt.raw)
	}
}

func TestRowInt64(t *testing.T) {
	id, ok := RowInt64(Row{"iD": int64(7)}, "id")
	assert.True(t, ok)
	assert.Equal(t, int64(7), id)

	id, ok = RowInt64(Row{"ID": []byte("9")}, "iD")
	assert.True(t, ok)
	assert.Equal(t, int64(9), id)

	_, ok = RowInt64(Row{"other": 1}, "iD")
	assert.False(t, ok)
}

func TestNextFinalApprovalRequest_ProcessTypeID(t *testing.T) {
	req := &NextFinalApprovalRequest{}
	id, ok := req.ProcessTypeID()
	assert.True(t, ok)
	assert.Nil(t, id)

	req.FinalApprovalProcessTypeID = "3"
	id, ok = req.ProcessTypeID()
	assert.True(t, ok)
	assert.Equal(t, int64(3), *id)
}

func TestTrackRow_Item(t *testing.T) {
	elid := "EL-1"
	row := TrackRow{ApplicationID: 5, BorrowerName: "Jane Doe", ExternalLeadID: &elid, ApplicationStatusTypeName: "Funded"}

	item := row.Item()

	assert.Equal(t, int64(5), item.ID)
	assert.Equal(t, "Jane Doe", item.Name)
	assert.Equal(t, &elid, item.ELID)
	assert.Equal(t, "Funded", item.ApplicationStatusTypeName)
}
