package types

import (
	"bytes"
	"compress/gzip"
	"io"
	"math"
	"testing"

	gogoproto "github.com/cosmos/gogoproto/proto"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"
)

func TestPageBounds(t *testing.T) {
	tests := []struct {
		name                 string
		total, offset, limit uint64
		start, end           uint64
	}{
		{"no limit", 5, 0, 0, 0, 5},
		{"first page", 5, 0, 2, 0, 2},
		{"last partial page", 5, 4, 2, 4, 5},
		{"offset at end", 5, 5, 2, 5, 5},
		{"offset past end", 5, 9, 2, 5, 5},
		{"empty registry", 0, 0, 10, 0, 0},
		{"limit at max", 5, 1, math.MaxUint64, 1, 5},
		{"offset and limit at max", 5, math.MaxUint64, math.MaxUint64, 5, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := PageBounds(tt.total, tt.offset, tt.limit)
			if start != tt.start || end != tt.end {
				t.Errorf("PageBounds(%d, %d, %d) = [%d, %d), want [%d, %d)",
					tt.total, tt.offset, tt.limit, start, end, tt.start, tt.end)
			}
		})
	}
}

type described interface {
	gogoproto.Message
	Descriptor() ([]byte, []int)
}

func TestDescriptorIndexes(t *testing.T) {
	msgs := []described{
		&MsgBootstrap{}, &MsgBootstrapResponse{},
		&MsgInitializePool{}, &MsgInitializePoolResponse{},
		&MsgDeposit{}, &MsgDepositResponse{},
		&MsgWithdraw{}, &MsgWithdrawResponse{},
		&MsgEmergencyWithdraw{}, &MsgEmergencyWithdrawResponse{},
		&MsgUpdateProjectInfo{}, &MsgUpdateProjectInfoResponse{},
		&MsgSetBonusTime{}, &MsgSetBonusTimeResponse{},
		&MsgUpdateEndBlock{}, &MsgUpdateEndBlockResponse{},
		&MsgClosePosition{}, &MsgClosePositionResponse{},
		&Position{}, &PoolVaults{},
		&QueryPositionRequest{}, &QueryPositionResponse{},
		&QueryPositionsRequest{}, &QueryPositionsResponse{},
		&QueryPendingRewardRequest{}, &QueryPendingRewardResponse{},
		&QueryVaultsRequest{}, &QueryVaultsResponse{},
	}
	for _, m := range msgs {
		name := gogoproto.MessageName(m)
		t.Run(name, func(t *testing.T) {
			gz, path := m.Descriptor()
			zr, err := gzip.NewReader(bytes.NewReader(gz))
			if err != nil {
				t.Fatal(err)
			}
			raw, err := io.ReadAll(zr)
			if err != nil {
				t.Fatal(err)
			}
			var fd descriptorpb.FileDescriptorProto
			if err := proto.Unmarshal(raw, &fd); err != nil {
				t.Fatal(err)
			}
			if len(path) != 1 || path[0] >= len(fd.MessageType) {
				t.Fatalf("bad descriptor path %v", path)
			}
			if got := fd.GetPackage() + "." + fd.MessageType[path[0]].GetName(); got != name {
				t.Errorf("descriptor %v names %s", path, got)
			}
		})
	}
}

func TestServicesResolve(t *testing.T) {
	tests := []struct {
		service string
		methods int
	}{
		{ProtoPackage + ".Msg", 9},
		{ProtoPackage + ".Query", 4},
	}
	for _, tt := range tests {
		t.Run(tt.service, func(t *testing.T) {
			desc, err := gogoproto.HybridResolver.FindDescriptorByName(protoreflect.FullName(tt.service))
			if err != nil {
				t.Fatal(err)
			}
			sd, ok := desc.(protoreflect.ServiceDescriptor)
			if !ok {
				t.Fatalf("%s resolved to %T", tt.service, desc)
			}
			if sd.Methods().Len() != tt.methods {
				t.Fatalf("%s has %d methods, want %d", tt.service, sd.Methods().Len(), tt.methods)
			}
			for i := 0; i < sd.Methods().Len(); i++ {
				input := sd.Methods().Get(i).Input()
				if input.IsPlaceholder() {
					t.Errorf("%s input %s is unresolved", sd.Methods().Get(i).Name(), input.FullName())
				}
			}
		})
	}
}
