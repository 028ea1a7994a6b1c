package encryption

import (
	"bytes"
	"fmt"

	"github.com/tink-crypto/tink-go/v2/insecurecleartextkeyset"
	"github.com/tink-crypto/tink-go/v2/keyset"
	aes_gcmpb "github.com/tink-crypto/tink-go/v2/proto/aes_gcm_go_proto"
	tinkpb "github.com/tink-crypto/tink-go/v2/proto/tink_go_proto"

	"google.golang.org/protobuf/proto"

	"github.com/idelchi/goshare/internal/secret"
)

const aesGCMTypeURL = "type.googleapis.com/google.crypto.tink.AesGcmKey"

// newAEADKeyHandle creates a Tink keyset handle for AES-GCM from raw key bytes.
// The RAW output prefix keeps ciphertexts as nonce || ciphertext || tag.
// Only the serialized buffers built here are wiped; the keyset read copies the key bytes.
func newAEADKeyHandle(key []byte) (*keyset.Handle, error) {
	aesGCMKey := &aes_gcmpb.AesGcmKey{
		Version:  0,
		KeyValue: key,
	}

	serializedKey, err := proto.Marshal(aesGCMKey)
	if err != nil {
		return nil, fmt.Errorf("serializing AesGcmKey: %w", err)
	}
	defer secret.Wipe(serializedKey)

	keySet := &tinkpb.Keyset{
		PrimaryKeyId: 1,
		Key: []*tinkpb.Keyset_Key{
			{
				KeyData: &tinkpb.KeyData{
					TypeUrl:         aesGCMTypeURL,
					Value:           serializedKey,
					KeyMaterialType: tinkpb.KeyData_SYMMETRIC,
				},
				Status:           tinkpb.KeyStatusType_ENABLED,
				KeyId:            1,
				OutputPrefixType: tinkpb.OutputPrefixType_RAW,
			},
		},
	}

	serializedKeyset, err := proto.Marshal(keySet)
	if err != nil {
		return nil, fmt.Errorf("serializing keyset: %w", err)
	}
	defer secret.Wipe(serializedKeyset)

	handle, err := insecurecleartextkeyset.Read(
		keyset.NewBinaryReader(bytes.NewReader(serializedKeyset)))
	if err != nil {
		return nil, fmt.Errorf("reading keyset: %w", err)
	}

	return handle, nil
}
