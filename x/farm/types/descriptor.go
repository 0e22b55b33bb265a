package types

import (
	"bytes"
	"compress/gzip"
	"context"
	"strings"

	gogoproto "github.com/cosmos/gogoproto/proto"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"
)

// ProtoPackage is the protobuf package of the farm messages and services
const ProtoPackage = "stakefarm.farm.v1"

type fieldType = descriptorpb.FieldDescriptorProto_Type

const (
	typeString  = descriptorpb.FieldDescriptorProto_TYPE_STRING
	typeUint64  = descriptorpb.FieldDescriptorProto_TYPE_UINT64
	typeUint32  = descriptorpb.FieldDescriptorProto_TYPE_UINT32
	typeInt64   = descriptorpb.FieldDescriptorProto_TYPE_INT64
	typeMessage = descriptorpb.FieldDescriptorProto_TYPE_MESSAGE
)

func field(name string, number int32, typ fieldType) *descriptorpb.FieldDescriptorProto {
	return &descriptorpb.FieldDescriptorProto{
		Name:     proto.String(name),
		JsonName: proto.String(jsonName(name)),
		Number:   proto.Int32(number),
		Label:    descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
		Type:     typ.Enum(),
	}
}

func messageField(name string, number int32, message string) *descriptorpb.FieldDescriptorProto {
	f := field(name, number, typeMessage)
	f.TypeName = proto.String("." + ProtoPackage + "." + message)
	return f
}

func repeatedField(f *descriptorpb.FieldDescriptorProto) *descriptorpb.FieldDescriptorProto {
	f.Label = descriptorpb.FieldDescriptorProto_LABEL_REPEATED.Enum()
	return f
}

func message(name string, fields ...*descriptorpb.FieldDescriptorProto) *descriptorpb.DescriptorProto {
	return &descriptorpb.DescriptorProto{Name: proto.String(name), Field: fields}
}

func method(name, input, output string) *descriptorpb.MethodDescriptorProto {
	return &descriptorpb.MethodDescriptorProto{
		Name:       proto.String(name),
		InputType:  proto.String("." + ProtoPackage + "." + input),
		OutputType: proto.String("." + ProtoPackage + "." + output),
	}
}

func protoFile(name string, deps []string, messages []*descriptorpb.DescriptorProto, service *descriptorpb.ServiceDescriptorProto) *descriptorpb.FileDescriptorProto {
	return &descriptorpb.FileDescriptorProto{
		Name:        proto.String(name),
		Package:     proto.String(ProtoPackage),
		Dependency:  deps,
		MessageType: messages,
		Service:     []*descriptorpb.ServiceDescriptorProto{service},
		Syntax:      proto.String("proto3"),
		Options: &descriptorpb.FileOptions{
			GoPackage: proto.String("github.com/openalpha/stake-farm/x/farm/types"),
		},
	}
}

// registerFile adds fd to the gogoproto registry the way generated code does
// and returns its gzipped form for Descriptor methods.
func registerFile(fd *descriptorpb.FileDescriptorProto) []byte {
	bz, err := proto.MarshalOptions{Deterministic: true}.Marshal(fd)
	if err != nil {
		panic(err)
	}
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(bz); err != nil {
		panic(err)
	}
	if err := zw.Close(); err != nil {
		panic(err)
	}
	gogoproto.RegisterFile(fd.GetName(), buf.Bytes())
	return buf.Bytes()
}

// unary builds a method handler in the shape protoc-gen-go-grpc emits
func unary[Req, Res any](service, name string, call func(srv interface{}, ctx context.Context, in *Req) (*Res, error)) grpc.MethodDesc {
	fullMethod := "/" + service + "/" + name
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv, ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
			handler := func(ctx context.Context, req interface{}) (interface{}, error) {
				return call(srv, ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

func jsonName(name string) string {
	parts := strings.Split(name, "_")
	for i := 1; i < len(parts); i++ {
		if parts[i] != "" {
			parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
		}
	}
	return strings.Join(parts, "")
}
