package dreamboxv1

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
)

func TestDescriptor_Registered(t *testing.T) {
	fd, err := protoregistry.GlobalFiles.FindFileByPath("dreambox/v1/dreambox.proto")
	require.NoError(t, err)

	svc := fd.Services().ByName("SavingsService")
	require.NotNil(t, svc)
	assert.Equal(t, protoreflect.FullName(SavingsService_ServiceDesc.ServiceName), svc.FullName())
	assert.Equal(t, len(SavingsService_ServiceDesc.Methods), svc.Methods().Len())

	method := svc.Methods().ByName("VerifyDeposit")
	require.NotNil(t, method)
	assert.Equal(t, (&VerifyDepositResponse{}).ProtoReflect().Descriptor(), method.Output())
}

func TestSafeLock_EmergencyPercentagePresence(t *testing.T) {
	zero := int32(0)
	tests := []struct {
		name    string
		pct     *int32
		present bool
	}{
		{"unset", nil, false},
		{"explicit zero", &zero, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := proto.Marshal(&CreateSafeLockRequest{Name: "Car", EmergencyFundPercentage: tt.pct})
			require.NoError(t, err)

			got := &CreateSafeLockRequest{}
			require.NoError(t, proto.Unmarshal(raw, got))
			assert.Equal(t, "Car", got.GetName())
			assert.Equal(t, tt.present, got.EmergencyFundPercentage != nil)
			assert.Equal(t, int32(0), got.GetEmergencyFundPercentage())
		})
	}
}
